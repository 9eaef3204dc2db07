package evaluator

// Localizer resolves display strings for rendered documents. Lookup is
// pure: the same (lang, key) pair always yields the same string, which
// keeps document projection deterministic.
type Localizer interface {
	// Localize returns the translation for a fixed layout key.
	// Unknown keys fall back to the key itself.
	Localize(lang, key string) string

	// LocalizeSide returns the display label for a container side.
	LocalizeSide(lang string, side Side) string

	// LocalizeDefectCode returns the display name for a defect category code.
	LocalizeDefectCode(lang, code string) string
}
