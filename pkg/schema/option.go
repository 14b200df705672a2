package schema

// Opt is a selectable choice carried by enumerated fields. Option and Control
// both satisfy it; constructors accept concrete slices and store this
// interface so a field's option list can mix plain options with controls.
type Opt interface {
	// OptionValue returns the choice's value, unique within its list.
	OptionValue() string
	// Validate checks the structural invariants eagerly, at construction.
	Validate() error
	// Encode serializes the declared attributes, recursing into nested
	// fields, advanced fields, and supported contents.
	Encode() map[string]any
}

// Option is the base descriptor for a selectable choice. Fields holds inputs
// shown whenever the option is active; AdvancedFields holds inputs tucked
// behind an "advanced" disclosure, each of which must carry an alias so bound
// values can be addressed.
type Option struct {
	Value          string
	Title          string
	Group          string
	Description    string
	Default        bool
	Fields         []Field
	AdvancedFields []Field
	// Max caps how many times the option may be instantiated by the caller.
	// Zero means unlimited.
	Max int
}

// OptionValue returns the option's value.
func (o Option) OptionValue() string { return o.Value }

// Validate checks the Option contract.
func (o Option) Validate() error {
	if o.Value == "" {
		return configErr(o.Title, ErrOptionValueMissing)
	}
	for _, field := range o.Fields {
		if err := field.validate(); err != nil {
			return configErr(o.Value, err)
		}
	}
	for _, field := range o.AdvancedFields {
		if field.Alias == "" {
			return configErr(o.Value, ErrAliasMissing)
		}
		if err := field.validate(); err != nil {
			return configErr(o.Value, err)
		}
	}
	return nil
}

// Encode serializes the option, recursing into nested field lists.
func (o Option) Encode() map[string]any {
	doc := map[string]any{
		"value": o.Value,
		"title": o.Title,
	}
	if o.Group != "" {
		doc["group"] = o.Group
	}
	if o.Description != "" {
		doc["description"] = sanitizeMarkup(o.Description)
	}
	if o.Default {
		doc["default"] = true
	}
	if len(o.Fields) > 0 {
		doc["fields"] = encodeFields(o.Fields)
	}
	if len(o.AdvancedFields) > 0 {
		doc["advanced_fields"] = encodeFields(o.AdvancedFields)
	}
	if o.Max > 0 {
		doc["max"] = o.Max
	}
	return doc
}

// ControlContent declares one content kind a control accepts or produces,
// whether it is required, and any inputs specific to that content.
type ControlContent struct {
	Kind     ContentKind
	Required bool
	Fields   []Field
}

// Validate checks the content kind is recognized.
func (c ControlContent) Validate() error {
	if !c.Kind.Valid() {
		return configErr(string(c.Kind), ErrUnknownContentKind)
	}
	for _, field := range c.Fields {
		if err := field.validate(); err != nil {
			return configErr(string(c.Kind), err)
		}
	}
	return nil
}

// Encode serializes the content declaration.
func (c ControlContent) Encode() map[string]any {
	doc := map[string]any{
		"content":  string(c.Kind),
		"required": c.Required,
	}
	if len(c.Fields) > 0 {
		doc["fields"] = encodeFields(c.Fields)
	}
	return doc
}

// ImageContent declares image content.
func ImageContent(required bool) ControlContent {
	return ControlContent{Kind: ContentImage, Required: required}
}

// VideoContent declares video content.
func VideoContent(required bool) ControlContent {
	return ControlContent{Kind: ContentVideo, Required: required}
}

// AudioContent declares audio content.
func AudioContent(required bool) ControlContent {
	return ControlContent{Kind: ContentAudio, Required: required}
}

// TextContent declares text content.
func TextContent(required bool) ControlContent {
	return ControlContent{Kind: ContentText, Required: required}
}

// ThreeDContent declares 3-D content.
func ThreeDContent(required bool) ControlContent {
	return ControlContent{Kind: ContentThreeD, Required: required}
}

// MaskContent declares mask content.
func MaskContent(required bool) ControlContent {
	return ControlContent{Kind: ContentMask, Required: required}
}

// Control is an option specialized as an input slot: it declares which
// content kinds it accepts via SupportedContents, which must not be empty.
type Control struct {
	Option
	SupportedContents []ControlContent
}

// Validate checks the Control contract on top of the Option contract.
func (c Control) Validate() error {
	if err := c.Option.Validate(); err != nil {
		return err
	}
	if len(c.SupportedContents) == 0 {
		return configErr(c.Value, ErrNoContents)
	}
	for _, content := range c.SupportedContents {
		if err := content.Validate(); err != nil {
			return configErr(c.Value, err)
		}
	}
	return nil
}

// Encode serializes the control, including its supported contents.
func (c Control) Encode() map[string]any {
	doc := c.Option.Encode()
	contents := make([]map[string]any, 0, len(c.SupportedContents))
	for _, content := range c.SupportedContents {
		contents = append(contents, content.Encode())
	}
	doc["supported_contents"] = contents
	return doc
}

// Supports reports whether any supported content matches kind.
func (c Control) Supports(kind ContentKind) bool {
	for _, content := range c.SupportedContents {
		if content.Kind == kind {
			return true
		}
	}
	return false
}

// SupportsImage reports whether the control accepts image content.
func (c Control) SupportsImage() bool { return c.Supports(ContentImage) }

// SupportsVideo reports whether the control accepts video content.
func (c Control) SupportsVideo() bool { return c.Supports(ContentVideo) }

// SupportsAudio reports whether the control accepts audio content.
func (c Control) SupportsAudio() bool { return c.Supports(ContentAudio) }

// SupportsText reports whether the control accepts text content.
func (c Control) SupportsText() bool { return c.Supports(ContentText) }

// SupportsThreeD reports whether the control accepts 3-D content.
func (c Control) SupportsThreeD() bool { return c.Supports(ContentThreeD) }

// SupportsMask reports whether the control accepts any mask content,
// including masks derived from prompts or colors.
func (c Control) SupportsMask() bool {
	return c.Supports(ContentMask) || c.Supports(ContentMaskFromPrompt) || c.Supports(ContentMaskFromColor)
}
