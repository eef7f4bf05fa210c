package lint

// Vocabulary of the Qt widget style surface. Unknown names are warnings,
// not errors: the consuming style engine ignores what it does not
// recognize, but a typo in a selector silently styles nothing, which is
// exactly what a vet run should surface.

var knownWidgets = makeSet(
	"*",
	"QWidget", "QMainWindow", "QDialog", "QFrame", "QLabel",
	"QLineEdit", "QTextEdit", "QPlainTextEdit",
	"QPushButton", "QToolButton", "QDialogButtonBox",
	"QComboBox", "QSpinBox", "QDoubleSpinBox",
	"QCheckBox", "QRadioButton",
	"QMenuBar", "QMenu",
	"QTableView", "QTableWidget", "QTreeView", "QTreeWidget",
	"QListView", "QListWidget", "QHeaderView", "QTableCornerButton",
	"QAbstractItemView", "QAbstractScrollArea", "QAbstractSpinBox",
	"QScrollBar", "QScrollArea",
	"QTabWidget", "QTabBar",
	"QSplitter", "QSlider", "QProgressBar",
	"QStatusBar", "QToolBar", "QToolTip",
	"QGroupBox", "QMessageBox", "QFormLayout",
)

var knownSubControls = makeSet(
	"indicator", "item", "handle", "groove",
	"add-line", "sub-line", "add-page", "sub-page",
	"up-button", "down-button", "up-arrow", "down-arrow",
	"drop-down", "section", "title", "pane", "tab", "tab-bar",
	"chunk", "separator", "corner", "menu-indicator", "branch",
	"left-arrow", "right-arrow", "scroller", "tear", "tearoff",
)

var knownStates = makeSet(
	"active", "checked", "unchecked", "indeterminate",
	"disabled", "enabled", "default",
	"hover", "pressed", "focus", "selected",
	"on", "off", "open", "closed", "flat", "floatable",
	"first", "last", "middle", "only-one",
	"next-selected", "previous-selected",
	"horizontal", "vertical",
	"top", "bottom", "left", "right",
	"minimized", "maximized", "window", "read-only", "edit-focus",
	"alternate", "has-children", "has-siblings", "no-frame",
)

// Properties valid in QSS which the style package does not classify into
// one of its groups.
var extraProperties = makeSet(
	"position", "top", "bottom", "left", "right",
	"background-image", "background-repeat", "background-position",
	"background-origin", "background-clip", "background-attachment",
	"text-decoration", "letter-spacing", "word-spacing",
	"selection-decoration", "lineedit-password-character",
	"button-layout", "dialogbuttonbox-buttons-have-icons",
	"messagebox-text-interaction-flags", "opacity",
	"paint-alternating-row-colors-for-empty-area",
)

func makeSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
