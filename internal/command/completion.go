// Copyright (c) 2026 The locctl Authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/locctl/locctl/internal/meta"
)

const bashCompletionScript = `# bash completion for locctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_locctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "resolve versions diff get check completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"

    case "$cmd" in
    resolve)
      local opts="$common --source -S --target -T"
            ;;
        versions)
      local opts="$common --source -S"
            ;;
        diff)
      local opts="$common --source -S --diff_filter --pick -p"
            ;;
        get)
      local opts="$common --source -S --target -T"
            ;;
        check)
      local opts="$common --source -S --strict"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--source" || "$prev" == "-S" ]]; then
        COMPREPLY=( $(compgen -o dirnames -W "builtin" -- "$cur") )
        return 0
    fi

  COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
  return 0
}

complete -F _locctl locctl
`

const zshCompletionScript = `#compdef locctl

_locctl() {
  local -a cmds
  cmds=(
    'resolve:resolve the locator tree for a version'
    'versions:list bundle versions'
    'diff:diff the resolved trees of two versions'
    'get:get a single selector by path'
    'check:validate a bundle'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'locctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    resolve)
      _arguments -C \
        $common \
        '(-S --source)'{-S,--source}'[bundle source]:source' \
        '(-T --target)'{-T,--target}'[target version spec]:target'
      ;;
    versions)
      _arguments -C \
        $common \
        '(-S --source)'{-S,--source}'[bundle source]:source'
      ;;
    diff)
      _arguments -C \
        $common \
        '(-S --source)'{-S,--source}'[bundle source]:source' \
        '--diff_filter[components to exclude from diff]' \
        '(-p --pick)'{-p,--pick}'[pick versions interactively]' \
        '::version spec:' \
        '::version spec:'
      ;;
    get)
      _arguments -C \
        $common \
        '(-S --source)'{-S,--source}'[bundle source]:source' \
        '(-T --target)'{-T,--target}'[target version spec]:target' \
        '1:locator path:' \
        '*:placeholder args:'
      ;;
    check)
      _arguments -C \
        $common \
        '(-S --source)'{-S,--source}'[bundle source]:source' \
        '--strict[fail on skipped documents]'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _locctl locctl locctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: locctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "locctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
