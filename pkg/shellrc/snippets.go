package shellrc

import "fmt"

// Snippet returns what a user with a user-owned rc file should add by
// hand to get the deployed fragments loaded. fish needs nothing: fish
// sources conf.d on its own.
func Snippet(shell, fragmentsDir string) string {
	switch shell {
	case "fish":
		return "# fish sources ~/.config/fish/conf.d/*.fish automatically; nothing to add"
	default:
		return fmt.Sprintf(`for f in "%s"/*.zsh; do [ -f "$f" ] && source "$f"; done`, fragmentsDir)
	}
}
