package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Warn
	Product
	Order
	Cart
	Money
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "x",
		kaomoji: "(ಥ﹏ಥ)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(◕‿◕)",
		squares: "🟦",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(¬_¬)",
		squares: "🟨",
	},
	Product: {
		emoji:   "📦",
		nerd:    "",
		plain:   "*",
		kaomoji: "[¬º-°]¬",
		squares: "🟫",
	},
	Order: {
		emoji:   "🧾",
		nerd:    "",
		plain:   "#",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟪",
	},
	Cart: {
		emoji:   "🛒",
		nerd:    "",
		plain:   ">",
		kaomoji: "ᕕ( ᐛ )ᕗ",
		squares: "🟧",
	},
	Money: {
		emoji:   "💰",
		nerd:    "",
		plain:   "$",
		kaomoji: "(＄‿＄)",
		squares: "🟩",
	},
}
