// Package topics adds free-form help topics to a Cobra command tree.
//
// Topics are files in an fs.FS (usually an embedded directory). The file
// name without extension is the topic name, so "taxonomy.md" is shown by
// "<app> help taxonomy".
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help document
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions read as topics.
	// Defaults to [".txt", ".md"].
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics read from a filesystem
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every topic file under dir in fsys.
func Load(fsys fs.FS, dir string, opts Options) (*Manager, error) {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = []string{".txt", ".md"}
	}
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !contains(extensions, ext) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

// Get returns the named topic
func (m *Manager) Get(name string) (*Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// Names returns the topic names in sorted order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic with the manager's renderer
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

// Install replaces rootCmd's help command with one that also knows topics
// and returns it. "help topics" lists them; anything that is not a topic
// falls back to the normal command help.
func (m *Manager) Install(rootCmd *cobra.Command) *cobra.Command {
	name := rootCmd.Name()
	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + name + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + name + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				return rootCmd.Help()
			}

			if args[0] == "topics" {
				names := m.Names()
				if len(names) == 0 {
					fmt.Fprintln(out, "No help topics available.")
					return nil
				}
				fmt.Fprintln(out, "Available help topics:")
				for _, n := range names {
					fmt.Fprintf(out, "  %s\n", n)
				}
				fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", name)
				return nil
			}

			if t, ok := m.Get(args[0]); ok {
				fmt.Fprint(out, m.Render(t))
				return nil
			}

			target, _, err := rootCmd.Find(args)
			if target == nil || err != nil {
				return fmt.Errorf("unknown help topic %q", strings.Join(args, " "))
			}
			return target.Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)
	return helpCmd
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
