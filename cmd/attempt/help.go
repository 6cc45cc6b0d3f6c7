package attempt

import (
	"embed"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/attempt/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// installTopics adds the embedded help topics. Markdown is rendered with
// glamour only when stdout shows colour.
func installTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if colorEnabled(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}

	m, err := topics.Load(topicFiles, "topics", topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(rootCmd).GroupID = "misc"
}
