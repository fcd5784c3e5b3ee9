package utilities

import "strings"

var articles = []string{"a ", "an ", "the "}

// RemoveArticle removes a leading English article from a title, whatever its case
func RemoveArticle(input string) string {
	lower := strings.ToLower(input)
	for _, article := range articles {
		if strings.HasPrefix(lower, article) && len(input) > len(article) {
			return input[len(article):]
		}
	}
	return input
}
