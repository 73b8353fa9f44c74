package goquery

import "github.com/LuseBiswas/jobscrape"

// WellfoundSelectors returns the selector table for wellfound.com role pages.
// Wellfound styles its cards with Tailwind utility classes, so the class
// strings below change whenever the front end is redesigned.
func WellfoundSelectors() jobscrape.Selectors {
	return jobscrape.Selectors{
		Card: jobscrape.Signature{
			Tag:   "div",
			Class: "mb-6 w-full rounded border border-gray-400 bg-white",
		},
		Title: jobscrape.Signature{
			Tag:   "a",
			Class: "mr-2 text-sm font-semibold text-brand-burgandy hover:underline",
		},
		Company: jobscrape.Signature{
			Tag:   "h2",
			Class: "inline text-md font-semibold",
		},
		Details: jobscrape.Signature{
			Tag:   "div",
			Class: "sm:flex sm:space-x-2",
		},
	}
}
