package main

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: `Generate shell completion script for hexdiff.

To load completions:

Bash:
  $ source <(hexdiff completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ hexdiff completion bash > /etc/bash_completion.d/hexdiff
  # macOS:
  $ hexdiff completion bash > $(brew --prefix)/etc/bash_completion.d/hexdiff

Zsh:
  $ source <(hexdiff completion zsh)
  # To load completions for each session, execute once:
  $ hexdiff completion zsh > "${fpath[1]}/_hexdiff"

Fish:
  $ hexdiff completion fish | source
  # To load completions for each session, execute once:
  $ hexdiff completion fish > ~/.config/fish/completions/hexdiff.fish

PowerShell:
  PS> hexdiff completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> hexdiff completion powershell > hexdiff.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
