// pkg/platform/resolver.go
package platform

import "slices"

// Missing returns the tools the builder needs that are not on PATH.
func Missing(p *Platform, tools ...string) []string {
	var missing []string
	for _, tool := range append([]string{p.MakeTool()}, tools...) {
		if tool == "" || slices.Contains(missing, tool) {
			continue
		}
		if !p.Has(tool) && !commandExists(tool) {
			missing = append(missing, tool)
		}
	}
	return missing
}
