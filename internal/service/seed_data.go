package service

import "anylist/internal/model"

type seedUser struct {
	FullName string
	Email    string
	Password string
	Roles    model.Roles
	IsActive bool
}

type seedItem struct {
	Name          string
	QuantityUnits string
}

var seedUsers = []seedUser{
	{
		FullName: "Fernando Herrera",
		Email:    "fernando@google.com",
		Password: "123456",
		Roles:    model.Roles{model.RoleAdmin, model.RoleSuperUser},
		IsActive: true,
	},
	{
		FullName: "Melissa Flores",
		Email:    "melissa@google.com",
		Password: "123456",
		Roles:    model.Roles{model.RoleUser},
		IsActive: true,
	},
	{
		FullName: "Hernando Vallejo",
		Email:    "hernando@google.com",
		Password: "123456",
		Roles:    model.Roles{model.RoleUser},
		IsActive: false,
	},
}

var seedItems = []seedItem{
	{Name: "Chicken breast", QuantityUnits: "lb"},
	{Name: "Boneless chicken thighs", QuantityUnits: "lb"},
	{Name: "Ground beef", QuantityUnits: "lb"},
	{Name: "Bacon", QuantityUnits: "package"},
	{Name: "Eggs", QuantityUnits: "dozen"},
	{Name: "Whole milk", QuantityUnits: "gal"},
	{Name: "Butter", QuantityUnits: "lb"},
	{Name: "Cheddar cheese", QuantityUnits: "g"},
	{Name: "Greek yogurt", QuantityUnits: "oz"},
	{Name: "Tomatoes", QuantityUnits: "lb"},
	{Name: "Onions", QuantityUnits: "lb"},
	{Name: "Garlic", QuantityUnits: "head"},
	{Name: "Carrots", QuantityUnits: "lb"},
	{Name: "Broccoli", QuantityUnits: "head"},
	{Name: "Spinach", QuantityUnits: "bag"},
	{Name: "Bananas", QuantityUnits: "bunch"},
	{Name: "Apples", QuantityUnits: "lb"},
	{Name: "Lemons", QuantityUnits: "unit"},
	{Name: "Bread", QuantityUnits: "loaf"},
	{Name: "Rice", QuantityUnits: "kg"},
	{Name: "Pasta", QuantityUnits: "box"},
	{Name: "Olive oil", QuantityUnits: "ml"},
	{Name: "Salt", QuantityUnits: "g"},
	{Name: "Black pepper", QuantityUnits: "g"},
	{Name: "Coffee beans", QuantityUnits: "g"},
	{Name: "Orange juice", QuantityUnits: "l"},
}

var seedLists = []string{
	"Weekly groceries",
	"BBQ party",
	"Office pantry",
}
