package sync

import "regexp"

// MatchResult is the outcome of evaluating one filename.
// When Matched is false both extraction maps are empty.
type MatchResult struct {
	Matched bool
	// ResourceFields holds values written directly onto the resource,
	// keyed by field type id.
	ResourceFields map[string]string
	// RelatedFields holds lookup values for related entities, keyed by the
	// unique field type id to look up.
	RelatedFields map[string]string
}

// FilenameEvaluator extracts structured fields from asset filenames using a
// single named-capture pattern. It is stateless: the same filename and
// configuration always produce the same result.
type FilenameEvaluator struct {
	pattern *regexp.Regexp
	fields  map[string]PatternField
}

// NewFilenameEvaluator creates an evaluator from compiled settings.
func NewFilenameEvaluator(settings *Settings) *FilenameEvaluator {
	return &FilenameEvaluator{
		pattern: settings.Pattern,
		fields:  settings.PatternFields,
	}
}

// Evaluate applies the pattern to the filename. Capture groups without a
// configured classification are ignored.
func (e *FilenameEvaluator) Evaluate(filename string) MatchResult {
	result := MatchResult{
		ResourceFields: make(map[string]string),
		RelatedFields:  make(map[string]string),
	}

	match := e.pattern.FindStringSubmatch(filename)
	if match == nil {
		return result
	}
	result.Matched = true

	for i, group := range e.pattern.SubexpNames() {
		if i == 0 || group == "" || match[i] == "" {
			continue
		}
		field, ok := e.fields[group]
		if !ok {
			continue
		}
		switch field.Role {
		case RoleResource:
			result.ResourceFields[field.FieldTypeID] = match[i]
		case RoleRelated:
			result.RelatedFields[field.LookupFieldTypeID] = match[i]
		}
	}

	return result
}
