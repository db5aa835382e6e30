package keys

import "sort"

// HelpCategory organizes commands by function
type HelpCategory string

const (
	HelpCategoryCanvas     HelpCategory = "Canvas"
	HelpCategoryMenu       HelpCategory = "Context menu"
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
)

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	KeyMenu:      {Description: "Open the context menu at the cursor (or right-click)", Category: HelpCategoryCanvas},
	KeyClipboard: {Description: "Set the clipboard text that Paste uses", Category: HelpCategoryCanvas},

	KeyEnter: {Description: "Run the highlighted entry or open its submenu", Category: HelpCategoryMenu},
	KeyEsc:   {Description: "Close the submenu, then the menu", Category: HelpCategoryMenu},

	KeyUp:    {Description: "Move up (Vim h/j/k/l keys supported)", Category: HelpCategoryNavigation},
	KeyDown:  {Description: "Move down", Category: HelpCategoryNavigation},
	KeyLeft:  {Description: "Move left, or close a submenu", Category: HelpCategoryNavigation},
	KeyRight: {Description: "Move right, or open a submenu", Category: HelpCategoryNavigation},

	KeyHelp: {Description: "Show help screen", Category: HelpCategoryOther},
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},
}

// categoryOrder is the display order of the help screen.
var categoryOrder = map[HelpCategory]int{
	HelpCategoryCanvas:     1,
	HelpCategoryMenu:       2,
	HelpCategoryNavigation: 3,
	HelpCategoryOther:      4,
	HelpCategoryUncategory: 5,
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns the keys in a category, in declaration order.
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// GetAllCategories returns all categories that have at least one key, in display order.
func GetAllCategories() []HelpCategory {
	categoryMap := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		categoryMap[info.Category] = true
	}

	categories := make([]HelpCategory, 0, len(categoryMap))
	for category := range categoryMap {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categoryOrder[categories[i]] < categoryOrder[categories[j]]
	})
	return categories
}
