// Package clipboard copies rendered layout text to the system clipboard.
package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Tool is a clipboard command and its arguments. Input is written to stdin.
type Tool []string

// Tools returns the clipboard commands to try on goos, in order of preference.
func Tools(goos string) []Tool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return []Tool{
			{"wl-copy"},                          // Wayland
			{"xclip", "-selection", "clipboard"}, // X11
			{"xsel", "--clipboard", "--input"},   // X11 alternative
		}
	case "darwin":
		return []Tool{{"pbcopy"}}
	case "windows":
		return []Tool{{"clip.exe"}}
	default:
		return nil
	}
}

// CopyText places text on the system clipboard using the first available tool.
func CopyText(text string) error {
	tools := Tools(runtime.GOOS)
	if len(tools) == 0 {
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return copyWith(tools, text, exec.LookPath)
}

func copyWith(tools []Tool, text string, lookPath func(string) (string, error)) error {
	var tried []string
	for _, tool := range tools {
		tried = append(tried, tool[0])
		if _, err := lookPath(tool[0]); err != nil {
			continue
		}
		cmd := exec.Command(tool[0], tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("no suitable clipboard tool found (tried: %s)", strings.Join(tried, ", "))
}
