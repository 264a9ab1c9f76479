// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// maxBodyLines caps how many output lines a built-in renderer emits.
const maxBodyLines = 50

// =============================================================================
// GENERIC FALLBACK PLUGIN
// =============================================================================

// genericPlugin is the sentinel returned for unregistered tool names: a
// minimal text-dump renderer in the "other" category.
func genericPlugin() *Plugin {
	return &Plugin{
		ToolName:    "",
		DisplayName: "Tool",
		Category:    CategoryOther,
		Icon:        "?",
		Renderer:    RendererFunc(renderGeneric),
		Layouts:     []Layout{LayoutCompact, LayoutExpanded},
		Description: "Generic renderer for unrecognized tools",
	}
}

// renderGeneric dumps the raw result text under a status line.
func renderGeneric(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	var sb strings.Builder
	sb.WriteString(statusLine(inv, inv.Name, theme))

	if out := bodyText(inv); out != "" {
		sb.WriteString("\n")
		sb.WriteString(clampLines(out, width, maxBodyLines))
	}
	return sb.String()
}

// statusLine renders the shared "[ok] name (1.2s)" header.
func statusLine(inv *toolcall.Invocation, name string, theme *styles.Theme) string {
	var icon string
	if inv.Result != nil && inv.Result.Success {
		icon = theme.ToolSuccess.Render(styles.StatusIndicators.Success)
	} else {
		icon = theme.ToolError.Render(styles.StatusIndicators.Error)
	}

	line := icon + " " + theme.ToolCardTitle.Render(name)
	if inv.Result != nil && inv.Result.Duration > 0 {
		line += " " + theme.Muted.Render("("+util.FormatDuration(inv.Result.Duration)+")")
	}
	return line
}

// bodyText picks the output or error text of a resolved invocation.
func bodyText(inv *toolcall.Invocation) string {
	if inv.Result == nil {
		return ""
	}
	if !inv.Result.Success && inv.Result.Error != "" {
		return inv.Result.Error
	}
	return inv.Result.Output
}

// clampLines truncates each line to width and the whole body to maxLines.
func clampLines(s string, width, maxLines int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > maxLines {
		omitted := len(lines) - maxLines
		lines = append(lines[:maxLines], fmt.Sprintf("... (%d more lines)", omitted))
	}
	for i, line := range lines {
		lines[i] = util.TruncateWidth(line, width)
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// highlightCode applies chroma syntax highlighting for terminal output.
// Falls back to plain text when tokenizing fails.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// highlightForPath picks a lexer from a file path.
func highlightForPath(code, path string) string {
	if lexer := lexers.Match(path); lexer != nil {
		return highlightCode(code, lexer.Config().Name)
	}
	return highlightCode(code, "")
}

// =============================================================================
// BUILT-IN PLUGINS
// =============================================================================

// RegisterBuiltins installs the standard tool plugins into a registry.
// Called once during application startup.
func RegisterBuiltins(reg *Registry) {
	reg.Register(&Plugin{
		ToolName:    "shell",
		DisplayName: "Shell",
		Category:    CategoryShell,
		Icon:        "$",
		Renderer:    RendererFunc(renderShell),
		Animations:  &styles.AnimationSet{Enter: "slide", Exit: "fade", Loading: "line"},
		Layouts:     []Layout{LayoutCompact, LayoutExpanded},
		Description: "Run a shell command",
	})

	reg.Register(&Plugin{
		ToolName:    "read_file",
		DisplayName: "Read File",
		Category:    CategoryFile,
		Icon:        "<",
		Renderer:    RendererFunc(renderReadFile),
		Layouts:     []Layout{LayoutCompact, LayoutExpanded},
		Description: "Read a file from disk",
	})

	reg.Register(&Plugin{
		ToolName:    "write_file",
		DisplayName: "Write File",
		Category:    CategoryFile,
		Icon:        ">",
		Renderer:    RendererFunc(renderWriteFile),
		Layouts:     []Layout{LayoutCompact},
		Description: "Write or modify a file",
	})

	reg.Register(&Plugin{
		ToolName:    "search_files",
		DisplayName: "Search Files",
		Category:    CategoryFile,
		Icon:        "/",
		Renderer:    RendererFunc(renderSearch),
		Animations:  &styles.AnimationSet{Enter: "fade", Exit: "fade", Loading: "dots"},
		Layouts:     []Layout{LayoutCompact, LayoutExpanded},
		Description: "Search file contents",
	})

	reg.Register(&Plugin{
		ToolName:    "web_search",
		DisplayName: "Web Search",
		Category:    CategoryWeb,
		Icon:        "@",
		Renderer:    RendererFunc(renderWebSearch),
		Animations:  &styles.AnimationSet{Enter: "fade", Exit: "fade", Loading: "pulse"},
		Layouts:     []Layout{LayoutCompact, LayoutExpanded},
		Description: "Search the web",
	})

	reg.Register(&Plugin{
		ToolName:    "task",
		DisplayName: "Agent Task",
		Category:    CategoryAgent,
		Icon:        "*",
		Renderer:    RendererFunc(renderGeneric),
		Animations:  &styles.AnimationSet{Enter: "fade", Exit: "fade", Loading: "block"},
		Layouts:     []Layout{LayoutExpanded},
		Description: "Delegate a sub-task to the agent",
	})
}

// renderShell shows the command being run, then its highlighted output.
func renderShell(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	var sb strings.Builder
	sb.WriteString(statusLine(inv, "Shell", theme))

	if cmd, ok := inv.Arg("command"); ok {
		sb.WriteString("\n")
		sb.WriteString(highlightCode("$ "+cmd, "bash"))
	}
	if out := bodyText(inv); out != "" {
		sb.WriteString("\n")
		sb.WriteString(clampLines(out, width, maxBodyLines))
	}
	return sb.String()
}

// renderReadFile shows the path, then syntax-highlighted content.
func renderReadFile(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	path, _ := inv.Arg("path")

	var sb strings.Builder
	sb.WriteString(statusLine(inv, "Read "+util.TruncateWidth(path, width/2), theme))

	if out := bodyText(inv); out != "" {
		sb.WriteString("\n")
		if inv.Result.Success {
			sb.WriteString(clampLines(highlightForPath(out, path), width, maxBodyLines))
		} else {
			sb.WriteString(clampLines(out, width, maxBodyLines))
		}
	}
	return sb.String()
}

// renderWriteFile shows a one-line summary; file writes are judged by
// their diff elsewhere, not by raw output.
func renderWriteFile(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	path, _ := inv.Arg("path")
	line := statusLine(inv, "Write "+util.TruncateWidth(path, width/2), theme)
	if out := util.FirstLine(bodyText(inv)); out != "" {
		line += "\n" + theme.Muted.Render(util.TruncateWidth(out, width))
	}
	return line
}

// renderSearch lists matches one per line.
func renderSearch(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	query, _ := inv.Arg("query")

	var sb strings.Builder
	sb.WriteString(statusLine(inv, "Search "+util.TruncateWidth(query, width/2), theme))
	if out := bodyText(inv); out != "" {
		sb.WriteString("\n")
		sb.WriteString(clampLines(out, width, maxBodyLines))
	}
	return sb.String()
}

// renderWebSearch shows results with muted URLs.
func renderWebSearch(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	query, _ := inv.Arg("query")

	var sb strings.Builder
	sb.WriteString(statusLine(inv, "Web "+util.TruncateWidth(query, width/2), theme))
	if out := bodyText(inv); out == "" {
		return sb.String()
	}

	for i, line := range strings.Split(strings.TrimRight(bodyText(inv), "\n"), "\n") {
		if i >= maxBodyLines {
			break
		}
		sb.WriteString("\n")
		if strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://") {
			sb.WriteString(theme.Muted.Render(util.TruncateWidth(line, width)))
		} else {
			sb.WriteString(util.TruncateWidth(line, width))
		}
	}
	return sb.String()
}
