package theme

// Override is a partial theme. Nil functions, nil pointers, empty slices and
// the empty Display fall back to the base theme.
type Override struct {
	Prefix     *string
	DonePrefix *string
	Icons      IconsOverride
	Style      Style
}

// IconsOverride replaces some of the base icons.
type IconsOverride struct {
	Unselected *string
	Options    []string
}

// Resolve merges o onto base field by field.
func Resolve(base Theme, o Override) Theme {
	t := base

	if o.Prefix != nil {
		t.Prefix = *o.Prefix
	}
	if o.DonePrefix != nil {
		t.DonePrefix = *o.DonePrefix
	}

	if o.Icons.Unselected != nil {
		t.Icons.Unselected = *o.Icons.Unselected
	}
	if len(o.Icons.Options) > 0 {
		t.Icons.Options = append([]string(nil), o.Icons.Options...)
	} else {
		t.Icons.Options = append([]string(nil), base.Icons.Options...)
	}

	t.Style = resolveStyle(base.Style, o.Style)
	return t
}

func resolveStyle(base, o Style) Style {
	s := base
	if o.Prefix != nil {
		s.Prefix = o.Prefix
	}
	if o.DonePrefix != nil {
		s.DonePrefix = o.DonePrefix
	}
	if o.Message != nil {
		s.Message = o.Message
	}
	if o.Help != nil {
		s.Help = o.Help
	}
	if o.SelectedCell != nil {
		s.SelectedCell = o.SelectedCell
	}
	if o.UnselectedCell != nil {
		s.UnselectedCell = o.UnselectedCell
	}
	if o.SelectedIcon != nil {
		s.SelectedIcon = o.SelectedIcon
	}
	if o.UnselectedIcon != nil {
		s.UnselectedIcon = o.UnselectedIcon
	}
	if o.SelectedOption != nil {
		s.SelectedOption = o.SelectedOption
	}
	if o.UnselectedOption != nil {
		s.UnselectedOption = o.UnselectedOption
	}
	if o.OptionsDisplay != "" {
		s.OptionsDisplay = o.OptionsDisplay
	}
	return s
}
