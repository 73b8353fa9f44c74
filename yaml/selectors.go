// Package yaml loads jobscrape selector tables from YAML files so that a
// job board's markup changes can be tracked without rebuilding.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/LuseBiswas/jobscrape"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

type signature struct {
	Tag   string `yaml:"tag" validate:"required,alphanum"`
	Class string `yaml:"class" validate:"required"`
}

type selectors struct {
	Card    signature `yaml:"card"`
	Title   signature `yaml:"title"`
	Company signature `yaml:"company"`
	Details signature `yaml:"details"`
}

// LoadSelectors reads a selector table from the YAML file at path.
func LoadSelectors(path string) (jobscrape.Selectors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return jobscrape.Selectors{}, err
	}
	return ParseSelectors(bytes.NewReader(data))
}

// ParseSelectors decodes a selector table such as:
//
//	card:    {tag: div, class: "mb-6 w-full rounded border border-gray-400 bg-white"}
//	title:   {tag: a,   class: "mr-2 text-sm font-semibold text-brand-burgandy hover:underline"}
//	company: {tag: h2,  class: "inline text-md font-semibold"}
//	details: {tag: div, class: "sm:flex sm:space-x-2"}
//
// Unknown keys and missing signatures are rejected with EINVALID.
func ParseSelectors(r io.Reader) (jobscrape.Selectors, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f selectors
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return jobscrape.Selectors{}, jobscrape.Errorf(jobscrape.EINVALID, "empty selector file")
		}
		return jobscrape.Selectors{}, jobscrape.Errorf(jobscrape.EINVALID, "invalid selector file: %v", err)
	}

	if err := validate.Struct(&f); err != nil {
		return jobscrape.Selectors{}, jobscrape.Errorf(jobscrape.EINVALID, "invalid selector file: %v", err)
	}

	return jobscrape.Selectors{
		Card:    jobscrape.Signature(f.Card),
		Title:   jobscrape.Signature(f.Title),
		Company: jobscrape.Signature(f.Company),
		Details: jobscrape.Signature(f.Details),
	}, nil
}
