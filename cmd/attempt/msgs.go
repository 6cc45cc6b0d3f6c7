package attempt

// Short messages (one-liners)
const (
	MsgRootShort       = "Inspect and maintain failure-kind taxonomies"
	MsgRootLong        = "attempt works with the failure-kind taxonomies used by the attempt library.\n\nTaxonomy files are TOML or YAML. Without file arguments the default\ntaxonomy is read from $ATTEMPT_TAXONOMY or $XDG_CONFIG_HOME/attempt/kinds.toml."
	MsgTreeShort       = "Show the kind hierarchy of a taxonomy"
	MsgCheckShort      = "Validate taxonomy files"
	MsgExportShort     = "Write a taxonomy in normalised form"
	MsgWhichShort      = "Show where a kind sits in the hierarchy"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrict  = "Treat parent conflicts as errors"
	MsgFlagBase    = "Taxonomy applied before the files, as if already registered"
	MsgFlagHosts   = "Include host kinds that no taxonomy entry extends"
	MsgFlagFormat  = "Output format (toml or yaml)"
	MsgFlagOutput  = "Write to file instead of stdout"

	MsgCheckOK        = "✓ %d kinds (%d extending host kinds), no problems found\n"
	MsgNoKinds        = "No kinds defined."
	MsgWhichHost      = "host kind"
	MsgWhichDefined   = "defined kind"
	MsgWhichChildren  = "children: %s\n"
	MsgExportWritten  = "Wrote %d kinds to %s\n"
	MsgVersionFormat  = "attempt version %s\n  commit: %s\n  built:  %s\n"
	MsgErrNoTaxonomy  = "no taxonomy file given and none found at %s"
	MsgErrNotFound    = "taxonomy file not found"
	MsgErrUnknownKind = "unknown kind %q"
	MsgErrNoCommand   = "no command specified"
)

const MsgExample = `  attempt tree kinds.toml              # Show the hierarchy
  attempt check --strict base.toml app.yaml
  attempt export -f yaml kinds.toml     # Convert to YAML
  attempt which ReadError kinds.toml`

const MsgCompletionLong = `To load completions:

Bash:
  $ source <(attempt completion bash)

Zsh:
  $ attempt completion zsh > "${fpath[1]}/_attempt"

Fish:
  $ attempt completion fish | source

PowerShell:
  PS> attempt completion powershell | Out-String | Invoke-Expression
`

const MsgUsageTemplate = `{{boldUpper "usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "global flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`
