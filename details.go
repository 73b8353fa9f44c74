package jobscrape

import "regexp"

// Go's \s is ASCII only. Card text rendered from &nbsp; carries U+00A0,
// so word gaps also accept any Unicode space separator.
var (
	// A single rupee figure or an en-dash range, e.g. "₹8L – ₹15L".
	salaryRe = regexp.MustCompile(`₹[\d,]+[KLM](?:[\s\p{Zs}]*–[\s\p{Zs}]*₹[\d,]+[KLM])?`)

	// "No equity" or a percentage such as "1% equity" or "0.5% equity".
	equityRe = regexp.MustCompile(`No\p{Zs}equity|\d+(?:\.\d+)?%\p{Zs}equity`)

	// "1 year of exp", "3 years of exp", "2 years experience".
	experienceRe = regexp.MustCompile(`\d+\p{Zs}years?[\s\p{Zs}]*of[\s\p{Zs}]*exp|\d+\p{Zs}years?[\s\p{Zs}]*experience`)
)

// ExtractSalary returns the first salary figure or range in details.
func ExtractSalary(details string) string {
	return firstMatch(salaryRe, details)
}

// ExtractEquity returns the first equity description in details.
func ExtractEquity(details string) string {
	return firstMatch(equityRe, details)
}

// ExtractExperience returns the first experience requirement in details.
func ExtractExperience(details string) string {
	return firstMatch(experienceRe, details)
}

// ParseDetails decomposes a job card's details text into salary, equity and
// experience. Each field is searched independently over the whole text and
// defaults to NotAvailable when its pattern does not match.
func ParseDetails(details string) (salary, equity, experience string) {
	return ExtractSalary(details), ExtractEquity(details), ExtractExperience(details)
}

func firstMatch(re *regexp.Regexp, s string) string {
	if m := re.FindString(s); m != "" {
		return m
	}
	return NotAvailable
}
