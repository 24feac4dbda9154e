package output

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Fixed status texts.
const (
	TextNameMissing    = "Sorry, you need to specify a name for your component 🧐\nThe expected format is: generate-component <name>"
	TextDirCreated     = "Directory created 📂"
	TextComponentSaved = "Component created and saved 👍"
	TextIndexSaved     = "Index file created and saved 👌"
	TextErrorBanner    = "🚫 Error creating component 😱"

	delimiter = "------------------------------------------------------------------"
)

// Celebrations is the pool of closing ascii art.
var Celebrations = []string{
	"ʕっ•ᴥ•ʔっ",
	"ʕ♥ᴥ♥ʔ",
	"♥‿♥",
	"(/¯◕ ‿ ◕)/¯",
	"※\\(^o^)/※",
	"ᕕ( •‿•)ᕗ",
	"ᕦ(^ᴥ^)ᕥ",
	"<(^_^)>",
	"ᕙ(`▽´)ᕗ",
	"ᕕ( ᐛ )ᕗ",
	"༼つ ◕‿◕ ༽つ",
}

// Choice is one entry of an inline option list.
type Choice struct {
	Label    string
	Selected bool
}

// FormatChoices renders options as "[ A ] | B" with the selected entry highlighted.
func FormatChoices(choices []Choice) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		if c.Selected {
			parts = append(parts, "[ "+StyleSelected.Render(c.Label)+" ]")
			continue
		}
		parts = append(parts, StyleDim.Render(c.Label))
	}
	return strings.Join(parts, " "+StyleDim.Render("|")+" ")
}

// Intro prints the banner announcing the component, its directory and language.
func Intro(name, dir string, languages []Choice) {
	Println("")
	Println(fmt.Sprintf("✨ Creating the ˗ˏˋ%s´ˎ˗ component ✨", StyleNoun.Render(name)))
	Println("")
	Println(StyleDelimiter.Render(delimiter))
	Println(" ▸ Directory: " + StyleSelected.Render(dir))
	Println(" ▸ Language:  " + FormatChoices(languages))
	Println(StyleDelimiter.Render(delimiter))
	Println("")
}

// TargetDirectory prints where the component directory will be created.
func TargetDirectory(dir, fullPath string) {
	Println(fmt.Sprintf("👉 Component will be created in the %s directory", StyleNoun.Render(dir)))
	Println(StyleLabel.Render("   Full path:") + " " + StylePath.Render(fullPath))
	Println("")
}

// ItemCompleted prints a checkmarked completion line.
func ItemCompleted(msg string) {
	Println(FormatCheckmark(msg))
}

// StylesheetSaved returns the completion text for a stylesheet.
func StylesheetSaved(fileName string) string {
	return fmt.Sprintf("Stylesheet %s created and saved 🎨", fileName)
}

// Conclusion prints the success summary. The ascii celebration is only
// printed when celebrate is set.
func Conclusion(name string, celebrate bool) {
	Println("")
	Println(StyleSuccess.Render(fmt.Sprintf("🎉 Yay, %s component created! 🎉", name)))
	if celebrate {
		Println(StyleSuccess.Render("   " + Celebration()))
	}
	Println("")
}

// Celebration picks a random celebration.
func Celebration() string {
	return Celebrations[rand.IntN(len(Celebrations))]
}

// AlreadyExists returns the collision detail for dir.
func AlreadyExists(dir string) string {
	return fmt.Sprintf("   Looks like a component with the same name already exists in %s 🫣\n"+
		"   Please delete this directory and try again, or create another component 👀", dir)
}

// ErrorBanner prints the failure banner followed by the detail text.
func ErrorBanner(detail string) {
	Println(StyleError.Bold(true).Render(TextErrorBanner))
	Println(StyleError.Render(detail))
	Println("")
}
