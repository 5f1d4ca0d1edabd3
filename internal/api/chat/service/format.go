package chatService

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// grouped renders an integer with thousands separators for the Markdown
// tables ("1149825" -> "1,149,825").
func grouped(n int) string {
	return printer.Sprintf("%d", n)
}
