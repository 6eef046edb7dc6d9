// Package repl is the interactive checking loop.
package repl

import (
	"fmt"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/mideind/greynircorrect/checker"
	"github.com/mideind/greynircorrect/render"
)

const completionThreshold = 2

// Handler runs an interactive loop: every input line is checked as a
// sentence and rendered with its annotations.
type Handler struct {
	Checker  *checker.Checker
	Renderer *render.Renderer

	// Words feeds the completer; empty disables completion.
	Words []string
}

func NewHandler(c *checker.Checker, r *render.Renderer, words []string) *Handler {
	return &Handler{Checker: c, Renderer: r, Words: words}
}

func (h *Handler) Run() error {
	fmt.Println("🔑 Ctrl+X: toggle color, Ctrl+F: toggle detail, quit to exit")

	history := []string{}

	for {
		in := prompt.Input("      ✔ ", h.completer,
			prompt.OptionTitle("greynircorrect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.ShowDetail = !h.Renderer.ShowDetail
					fmt.Printf("Detail set to %t\n", h.Renderer.ShowDetail)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Printf("Color set to %t\n", h.Renderer.HasColor)
				}}),
		)

		if in == "quit" {
			return nil
		}
		if strings.TrimSpace(in) == "" {
			continue
		}

		history = append(history, in)

		s, err := h.Checker.CheckSingle(in)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		if s == nil {
			continue
		}
		h.Renderer.Sentence(s)
	}
}

// completer suggests vocabulary words for the word under the cursor.
func (h *Handler) completer(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if len([]rune(word)) < completionThreshold {
		return nil
	}

	var suggests []prompt.Suggest
	for _, w := range h.Words {
		if strings.HasPrefix(w, strings.ToLower(word)) {
			suggests = append(suggests, prompt.Suggest{Text: w})
		}
	}
	return prompt.FilterHasPrefix(suggests, word, true)
}
