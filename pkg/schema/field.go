package schema

// Field is a declared, typed workflow parameter carrying UI metadata. Fields
// are built once through the per-kind constructors, validated eagerly, and
// immutable afterwards, so a single descriptor is safely shared across
// concurrent schema extractions and bound calls.
//
// The static default lives in an unexported slot rather than a public Default
// member so the default/generator exclusion guard cannot be confused by
// binder machinery; encoding rehydrates it under the public "default" key.
type Field struct {
	Type        FieldType
	Alias       string
	Title       string
	Description string
	Placeholder string
	Options     []Opt
	Min         *float64
	Max         *float64
	Step        *float64
	Generator   GeneratorType
	ShowIf      []Conditional
	DisableIf   []Conditional

	defaultValue any
	hasDefault   bool
}

// Declared reports whether the descriptor was produced by a constructor. The
// zero Field is the "not a field" marker the extraction engine soft-skips.
func (f Field) Declared() bool { return f.Type != "" }

// Default returns the field's static default and whether one was declared.
func (f Field) Default() (any, bool) { return f.defaultValue, f.hasDefault }

// DefaultOrGenerate returns the static default when one was declared, or a
// fresh generator draw for generator-backed fields. Integer draws come back
// as int64 so they serialize without a fractional part.
func (f Field) DefaultOrGenerate() (any, bool) {
	if f.hasDefault {
		return f.defaultValue, true
	}
	if f.Generator == "" {
		return nil, false
	}
	value := f.Generator.Generate(f.Min, f.Max)
	if f.Generator == GeneratorRandomInteger {
		return int64(value), true
	}
	return value, true
}

func (f Field) validate() error {
	if !f.Type.Valid() {
		return configErr(f.Title, ErrUnknownFieldType)
	}
	if f.Title == "" {
		return configErr(string(f.Type), ErrTitleRequired)
	}
	if f.Type == FieldSlider && (f.Min == nil || f.Max == nil) {
		return configErr(f.Title, ErrBoundsRequired)
	}
	if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
		return configErr(f.Title, ErrBoundsReversed)
	}
	if f.Step != nil && *f.Step <= 0 {
		return configErr(f.Title, ErrStepNotPositive)
	}
	if f.Generator != "" {
		if !f.Generator.Valid() {
			return configErr(f.Title, ErrUnknownGenerator)
		}
		if !f.Type.Numeric() {
			return configErr(f.Title, ErrGeneratorKind)
		}
		if f.hasDefault {
			return configErr(f.Title, ErrDefaultConflict)
		}
	}
	if f.Type.Enumerated() {
		if len(f.Options) == 0 {
			return configErr(f.Title, ErrNoOptions)
		}
		seen := make(map[string]struct{}, len(f.Options))
		for _, opt := range f.Options {
			if err := opt.Validate(); err != nil {
				return configErr(f.Title, err)
			}
			value := opt.OptionValue()
			if _, dup := seen[value]; dup {
				return configErr(f.Title+"/"+value, ErrDuplicateOption)
			}
			seen[value] = struct{}{}
		}
	}
	if err := validateConditionals(f.ShowIf); err != nil {
		return configErr(f.Title, err)
	}
	if err := validateConditionals(f.DisableIf); err != nil {
		return configErr(f.Title, err)
	}
	return nil
}

func newField(f Field, def any, hasDefault bool) (Field, error) {
	f.defaultValue = def
	f.hasDefault = hasDefault
	if err := f.validate(); err != nil {
		return Field{}, err
	}
	return f, nil
}

// TextConfig configures the text-like constructors (Text, TextArea, Color).
type TextConfig struct {
	Title       string
	Description string
	Placeholder string
	Alias       string
	Default     any
	ShowIf      []Conditional
	DisableIf   []Conditional
}

func textField(kind FieldType, cfg TextConfig) (Field, error) {
	return newField(Field{
		Type:        kind,
		Alias:       cfg.Alias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Placeholder: cfg.Placeholder,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, cfg.Default, cfg.Default != nil)
}

// Text declares a single-line text field.
func Text(cfg TextConfig) (Field, error) { return textField(FieldText, cfg) }

// TextArea declares a multi-line text field.
func TextArea(cfg TextConfig) (Field, error) { return textField(FieldTextArea, cfg) }

// Color declares a color picker field whose value is a color string.
func Color(cfg TextConfig) (Field, error) { return textField(FieldColor, cfg) }

// NumberConfig configures the numeric constructors.
type NumberConfig struct {
	Title       string
	Description string
	Placeholder string
	Alias       string
	Min         *float64
	Max         *float64
	Step        *float64
	Default     any
	Generator   GeneratorType
	ShowIf      []Conditional
	DisableIf   []Conditional
}

func numberField(kind FieldType, cfg NumberConfig) (Field, error) {
	return newField(Field{
		Type:        kind,
		Alias:       cfg.Alias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Placeholder: cfg.Placeholder,
		Min:         cfg.Min,
		Max:         cfg.Max,
		Step:        cfg.Step,
		Generator:   cfg.Generator,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, cfg.Default, cfg.Default != nil)
}

// Number declares a decimal number field.
func Number(cfg NumberConfig) (Field, error) { return numberField(FieldNumber, cfg) }

// Integer declares a whole-number field.
func Integer(cfg NumberConfig) (Field, error) { return numberField(FieldInteger, cfg) }

// Slider declares a bounded slider field. Both min and max are required.
func Slider(cfg NumberConfig) (Field, error) { return numberField(FieldSlider, cfg) }

// PercentageSlider declares a slider spanning 0-100 unless narrower bounds
// are given.
func PercentageSlider(cfg NumberConfig) (Field, error) {
	if cfg.Min == nil {
		cfg.Min = Ptr(0.0)
	}
	if cfg.Max == nil {
		cfg.Max = Ptr(100.0)
	}
	return numberField(FieldSlider, cfg)
}

// CheckboxConfig configures the Checkbox constructor.
type CheckboxConfig struct {
	Title       string
	Description string
	Alias       string
	Default     bool
	ShowIf      []Conditional
	DisableIf   []Conditional
}

// Checkbox declares a boolean field. The default is always present so the
// renderer can show an initial state.
func Checkbox(cfg CheckboxConfig) (Field, error) {
	return newField(Field{
		Type:        FieldCheckbox,
		Alias:       cfg.Alias,
		Title:       cfg.Title,
		Description: cfg.Description,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, cfg.Default, true)
}

// SelectConfig configures the enumerated constructors backed by plain
// options (Select, Radio, DynamicForm).
type SelectConfig struct {
	Title       string
	Description string
	Placeholder string
	Alias       string
	Options     []Option
	Default     any
	ShowIf      []Conditional
	DisableIf   []Conditional
}

func selectField(kind FieldType, cfg SelectConfig) (Field, error) {
	opts := make([]Opt, 0, len(cfg.Options))
	for _, option := range cfg.Options {
		opts = append(opts, option)
	}
	def := cfg.Default
	hasDefault := def != nil
	if !hasDefault {
		def = []any{}
		hasDefault = true
	}
	return newField(Field{
		Type:        kind,
		Alias:       cfg.Alias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Placeholder: cfg.Placeholder,
		Options:     opts,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, def, hasDefault)
}

// Select declares a field whose value is one of the declared options.
func Select(cfg SelectConfig) (Field, error) { return selectField(FieldSelect, cfg) }

// Radio declares a select rendered as a radio group.
func Radio(cfg SelectConfig) (Field, error) { return selectField(FieldRadio, cfg) }

// DynamicForm declares a field whose active option swaps in that option's
// nested fields.
func DynamicForm(cfg SelectConfig) (Field, error) { return selectField(FieldDynamicForm, cfg) }

// PromptConfig configures the reserved prompt constructors.
type PromptConfig struct {
	Title       string
	Description string
	Placeholder string
	Default     any
	ShowIf      []Conditional
	DisableIf   []Conditional
}

// Prompt declares the reserved prompt field, aliased "prompt".
func Prompt(cfg PromptConfig) (Field, error) {
	if cfg.Title == "" {
		cfg.Title = "Prompt"
	}
	if cfg.Description == "" {
		cfg.Description = "Prompt for the model."
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "What do you want to create?"
	}
	def := cfg.Default
	if def == nil {
		def = ""
	}
	return newField(Field{
		Type:        FieldPrompt,
		Alias:       PromptAlias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Placeholder: cfg.Placeholder,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, def, true)
}

// NegativePrompt declares the reserved negative prompt field, aliased
// "negative_prompt".
func NegativePrompt(cfg PromptConfig) (Field, error) {
	if cfg.Title == "" {
		cfg.Title = "Negative Prompt"
	}
	if cfg.Description == "" {
		cfg.Description = "Negative prompt for the model."
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "What do you want to avoid?"
	}
	def := cfg.Default
	if def == nil {
		def = ""
	}
	return newField(Field{
		Type:        FieldNegativePrompt,
		Alias:       NegativePromptAlias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Placeholder: cfg.Placeholder,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, def, true)
}

// ControlsConfig configures the Controls constructor.
type ControlsConfig struct {
	Title       string
	Description string
	Options     []Control
	ShowIf      []Conditional
	DisableIf   []Conditional
}

// Controls declares the reserved controls field, aliased "controls". Every
// option must satisfy the Control contract.
func Controls(cfg ControlsConfig) (Field, error) {
	if cfg.Title == "" {
		cfg.Title = "Controls"
	}
	if cfg.Description == "" {
		cfg.Description = "List of controls."
	}
	opts := make([]Opt, 0, len(cfg.Options))
	for _, control := range cfg.Options {
		opts = append(opts, control)
	}
	return newField(Field{
		Type:        FieldControls,
		Alias:       ControlsAlias,
		Title:       cfg.Title,
		Description: cfg.Description,
		Options:     opts,
		ShowIf:      cfg.ShowIf,
		DisableIf:   cfg.DisableIf,
	}, []any{}, true)
}

// Ptr returns a pointer to v, easing optional numeric bounds.
func Ptr[T any](v T) *T { return &v }
