package schema

// FieldType is the closed vocabulary of renderer-facing field kinds. A
// descriptor whose type is outside this set is a configuration error.
type FieldType string

const (
	FieldText           FieldType = "text"
	FieldTextArea       FieldType = "textarea"
	FieldNumber         FieldType = "number"
	FieldSlider         FieldType = "slider"
	FieldInteger        FieldType = "integer"
	FieldCheckbox       FieldType = "checkbox"
	FieldSelect         FieldType = "select"
	FieldRadio          FieldType = "radio"
	FieldColor          FieldType = "color"
	FieldPrompt         FieldType = "prompt"
	FieldNegativePrompt FieldType = "negative_prompt"
	FieldControls       FieldType = "controls"
	FieldDynamicForm    FieldType = "dynamic_form"
)

var fieldTypes = map[FieldType]struct{}{
	FieldText:           {},
	FieldTextArea:       {},
	FieldNumber:         {},
	FieldSlider:         {},
	FieldInteger:        {},
	FieldCheckbox:       {},
	FieldSelect:         {},
	FieldRadio:          {},
	FieldColor:          {},
	FieldPrompt:         {},
	FieldNegativePrompt: {},
	FieldControls:       {},
	FieldDynamicForm:    {},
}

// Valid reports whether the type belongs to the closed vocabulary.
func (t FieldType) Valid() bool {
	_, ok := fieldTypes[t]
	return ok
}

// Numeric reports whether the type carries numeric bounds (min/max/step).
func (t FieldType) Numeric() bool {
	switch t {
	case FieldNumber, FieldInteger, FieldSlider:
		return true
	}
	return false
}

// Enumerated reports whether the type requires a non-empty options list.
func (t FieldType) Enumerated() bool {
	switch t {
	case FieldSelect, FieldRadio, FieldControls, FieldDynamicForm:
		return true
	}
	return false
}

// Textual reports whether bound values for the type must be strings.
func (t FieldType) Textual() bool {
	switch t {
	case FieldText, FieldTextArea, FieldColor, FieldPrompt, FieldNegativePrompt:
		return true
	}
	return false
}

// ContentKind is the closed vocabulary of content a control accepts or
// produces.
type ContentKind string

const (
	ContentImage          ContentKind = "image"
	ContentVideo          ContentKind = "video"
	ContentAudio          ContentKind = "audio"
	ContentText           ContentKind = "text"
	ContentThreeD         ContentKind = "threed"
	ContentMask           ContentKind = "mask"
	ContentMaskFromPrompt ContentKind = "mask_from_prompt"
	ContentMaskFromColor  ContentKind = "mask_from_color"
)

var contentKinds = map[ContentKind]struct{}{
	ContentImage:          {},
	ContentVideo:          {},
	ContentAudio:          {},
	ContentText:           {},
	ContentThreeD:         {},
	ContentMask:           {},
	ContentMaskFromPrompt: {},
	ContentMaskFromColor:  {},
}

// Valid reports whether the kind belongs to the closed vocabulary.
func (k ContentKind) Valid() bool {
	_, ok := contentKinds[k]
	return ok
}

// MaxSafeInteger is the largest integer exactly representable as a float64.
// Generator draws are capped here so JavaScript consumers of the schema never
// see a value they cannot round-trip.
const MaxSafeInteger = 1<<53 - 1

// MaxSafeDecimal is the decimal ceiling for unbounded random decimal draws.
const MaxSafeDecimal = float64(MaxSafeInteger)

// Reserved aliases shared between field constructors and the binder.
const (
	PromptAlias         = "prompt"
	NegativePromptAlias = "negative_prompt"
	ControlsAlias       = "controls"
)

// InfluenceSettingKey is the per-control settings entry holding how strongly
// the control should steer generation. InfluenceDefault applies when absent.
const (
	InfluenceSettingKey = "influence"
	InfluenceDefault    = 1.0
)
