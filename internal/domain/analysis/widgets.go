package analysis

import "sort"

// knownWidgets is the catalog of Textual widget type names the toolchain
// recognizes. Healing gates on it when mapping missing-id findings;
// structural analysis does not.
var knownWidgets = map[string]bool{
	"App": true, "Static": true, "Button": true, "Input": true,
	"Label": true, "ListView": true, "ListItem": true, "TextArea": true,
	"Checkbox": true, "RadioSet": true, "RadioButton": true, "Switch": true,
	"Slider": true, "ProgressBar": true, "DataTable": true, "Tree": true,
	"TreeNode": true, "DirectoryTree": true, "FileTree": true, "Tabs": true,
	"Tab": true, "TabbedContent": true, "ContentSwitcher": true,
	"SplitView": true, "HSplit": true, "VSplit": true, "Panel": true,
	"Header": true, "Footer": true, "Sidebar": true, "Sparkline": true,
	"BarChart": true, "LineChart": true, "Histogram": true, "Logging": true,
	"RichLog": true, "TextLog": true, "Pretty": true, "Rule": true,
	"LoadingIndicator": true, "Placeholder": true, "Badge": true,
	"Tag": true, "Notify": true, "Markdown": true, "MarkdownViewer": true,
	"Code": true, "CodePane": true, "Json": true, "Yaml": true,
}

// KnownWidget reports whether name is a recognized Textual widget type.
func KnownWidget(name string) bool { return knownWidgets[name] }

// WidgetCatalog returns the sorted list of recognized widget type names.
func WidgetCatalog() []string {
	names := make([]string, 0, len(knownWidgets))
	for name := range knownWidgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
