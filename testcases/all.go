package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"line":    lineCases,
	"minimal": minimalCases,
	"wave":    waveCases,
	"sketch":  sketchCases,
}

// Find returns the test case with the given "category_name" identifier.
func Find(id string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if category+"_"+tc.Name == id {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}
