package domain

// ViewMode — текущий режим интерфейса
type ViewMode string

// AdminSection — активный раздел админки
type AdminSection string

// Theme — цветовая тема интерфейса
type Theme string

const (
	ViewModeStore ViewMode = "store"
	ViewModeAdmin ViewMode = "admin"

	AdminSectionProducts   AdminSection = "products"
	AdminSectionCategories AdminSection = "categories"
	AdminSectionTypes      AdminSection = "types"

	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Session описывает состояние единственной пользовательской сессии.
// Сохраняется только тема, остальное живёт в памяти процесса.
type Session struct {
	ViewMode      ViewMode
	AdminSection  AdminSection
	Authenticated bool
	Theme         Theme
}

func NewSession() *Session {
	return &Session{
		ViewMode:     ViewModeStore,
		AdminSection: AdminSectionProducts,
		Theme:        ThemeLight,
	}
}
