package pentaho

import "strings"

// ParseOutputType matches s case-insensitively. An empty value yields DefaultOutputType.
func ParseOutputType(s string) (OutputType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultOutputType, nil
	}
	t := OutputType(strings.ToUpper(s))
	if _, ok := outputTargets[t]; !ok {
		return "", ErrUnsupportedOutputType
	}
	return t, nil
}

// Target is the value of the output-target query parameter.
func (t OutputType) Target() string {
	return outputTargets[t]
}

func (t OutputType) ContentType() string {
	return contentTypes[t]
}

func (t OutputType) Extension() string {
	return extensions[t]
}

// IsAttachment reports whether the document is offered as a download.
func (t OutputType) IsAttachment() bool {
	return t == OutputXLS || t == OutputCSV
}
