package jobscrape

// Signature identifies an element by its tag name and exact class attribute.
type Signature struct {
	Tag   string `json:"tag" yaml:"tag"`
	Class string `json:"class" yaml:"class"`
}

// Selectors is the declarative table describing where a job board keeps
// its job cards and the fields inside them. Title, Company and Details are
// matched among the descendants of each Card.
type Selectors struct {
	Card    Signature `json:"card" yaml:"card"`
	Title   Signature `json:"title" yaml:"title"`
	Company Signature `json:"company" yaml:"company"`
	Details Signature `json:"details" yaml:"details"`
}

// Validate returns an error if any signature is missing its tag or class.
func (s *Selectors) Validate() error {
	for _, f := range []struct {
		name string
		sig  Signature
	}{
		{"card", s.Card},
		{"title", s.Title},
		{"company", s.Company},
		{"details", s.Details},
	} {
		if f.sig.Tag == "" {
			return Errorf(EINVALID, "%s selector tag required", f.name)
		}
		if f.sig.Class == "" {
			return Errorf(EINVALID, "%s selector class required", f.name)
		}
	}
	return nil
}

// Extractor turns a listing page into jobs.
type Extractor interface {
	// Extract parses HTML and returns one Job per job card in document order.
	// A page without matching cards returns an empty slice and no error.
	Extract(html string) ([]*Job, error)
}
