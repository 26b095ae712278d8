package database

import (
	"fmt"

	"gastai/internal/models"

	"gorm.io/gorm"
)

type seedCategory struct {
	Name  string
	Type  string
	Icon  string
	Color string
}

// defaultCategories is the fixed reference catalog. Categories are seeded
// once and then only referenced by transactions.
var defaultCategories = []seedCategory{
	// Expense: essentials
	{"Alimentación", models.TransactionTypeExpense, "🍔", "#ef4444"},
	{"Supermercado", models.TransactionTypeExpense, "🛒", "#f97316"},
	{"Transporte", models.TransactionTypeExpense, "🚗", "#3b82f6"},
	{"Combustible", models.TransactionTypeExpense, "⛽", "#0ea5e9"},
	{"Hogar", models.TransactionTypeExpense, "🏠", "#06b6d4"},
	{"Alquiler", models.TransactionTypeExpense, "🔑", "#0891b2"},

	// Expense: services and subscriptions
	{"Suscripciones", models.TransactionTypeExpense, "📱", "#a855f7"},
	{"Internet/Cable", models.TransactionTypeExpense, "📡", "#8b5cf6"},
	{"Streaming", models.TransactionTypeExpense, "🎬", "#d946ef"},
	{"Telefonía", models.TransactionTypeExpense, "📞", "#7c3aed"},
	{"Servicios", models.TransactionTypeExpense, "⚡", "#eab308"},

	// Expense: health
	{"Salud", models.TransactionTypeExpense, "💊", "#10b981"},
	{"Gimnasio", models.TransactionTypeExpense, "💪", "#059669"},
	{"Seguro Médico", models.TransactionTypeExpense, "🏥", "#14b8a6"},

	// Expense: personal
	{"Ropa", models.TransactionTypeExpense, "👕", "#ec4899"},
	{"Belleza/Cuidado", models.TransactionTypeExpense, "💅", "#f43f5e"},
	{"Regalos", models.TransactionTypeExpense, "🎁", "#fb7185"},

	// Expense: entertainment
	{"Entretenimiento", models.TransactionTypeExpense, "🎮", "#8b5cf6"},
	{"Restaurantes", models.TransactionTypeExpense, "🍽️", "#f59e0b"},
	{"Café/Snacks", models.TransactionTypeExpense, "☕", "#d97706"},
	{"Viajes", models.TransactionTypeExpense, "✈️", "#06b6d4"},
	{"Eventos", models.TransactionTypeExpense, "🎉", "#ec4899"},

	// Expense: education
	{"Educación", models.TransactionTypeExpense, "📚", "#f59e0b"},
	{"Cursos Online", models.TransactionTypeExpense, "🎓", "#facc15"},
	{"Libros", models.TransactionTypeExpense, "📖", "#fbbf24"},

	// Expense: pets
	{"Mascotas", models.TransactionTypeExpense, "🐶", "#84cc16"},
	{"Veterinario", models.TransactionTypeExpense, "🏥", "#65a30d"},

	// Expense: technology
	{"Tecnología", models.TransactionTypeExpense, "💻", "#6366f1"},
	{"Software", models.TransactionTypeExpense, "⚙️", "#4f46e5"},

	// Expense: debts and financial
	{"Préstamos", models.TransactionTypeExpense, "🏦", "#94a3b8"},
	{"Tarjetas de Crédito", models.TransactionTypeExpense, "💳", "#64748b"},
	{"Seguros", models.TransactionTypeExpense, "🛡️", "#475569"},
	{"Impuestos", models.TransactionTypeExpense, "📋", "#78716c"},

	// Expense: misc
	{"Mantenimiento", models.TransactionTypeExpense, "🔧", "#71717a"},
	{"Donaciones", models.TransactionTypeExpense, "❤️", "#e11d48"},
	{"Otros Gastos", models.TransactionTypeExpense, "💸", "#6366f1"},

	// Income
	{"Salario", models.TransactionTypeIncome, "💰", "#22c55e"},
	{"Freelance", models.TransactionTypeIncome, "💻", "#14b8a6"},
	{"Negocio Propio", models.TransactionTypeIncome, "🏢", "#10b981"},
	{"Inversiones", models.TransactionTypeIncome, "📈", "#84cc16"},
	{"Ventas", models.TransactionTypeIncome, "🛍️", "#16a34a"},
	{"Bonos", models.TransactionTypeIncome, "🎯", "#059669"},
	{"Regalos/Propinas", models.TransactionTypeIncome, "🎁", "#65a30d"},
	{"Reembolsos", models.TransactionTypeIncome, "↩️", "#4ade80"},
	{"Otros Ingresos", models.TransactionTypeIncome, "💵", "#10b981"},
}

// SeedCategories inserts the default category catalog if it has not been
// seeded yet. Idempotent: an already-populated catalog is left untouched.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]models.Category, 0, len(defaultCategories))
	for _, sc := range defaultCategories {
		categories = append(categories, models.Category{
			Name:  sc.Name,
			Type:  sc.Type,
			Icon:  sc.Icon,
			Color: sc.Color,
		})
	}

	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	return nil
}
