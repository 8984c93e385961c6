package demoserver

import "github.com/fakestore/storefront/internal/models"

// seedUser pairs a directory entry with its demo password. Passwords mirror
// the public demo API's well-known accounts.
type seedUser struct {
	models.User
	Password string
}

var seedUsers = []seedUser{
	{User: models.User{ID: 1, Username: "johnd", Email: "john@gmail.com"}, Password: "m38rmF$"},
	{User: models.User{ID: 2, Username: "mor_2314", Email: "morrison@gmail.com"}, Password: "83r5^_"},
	{User: models.User{ID: 3, Username: "kevinryan", Email: "kevin@gmail.com"}, Password: "kev02937@"},
	{User: models.User{ID: 4, Username: "donero", Email: "don@gmail.com"}, Password: "ewedon"},
}

var seedProducts = []models.Product{
	{
		ID:          1,
		Title:       "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops",
		Price:       109.95,
		Description: "Your perfect pack for everyday use and walks in the forest.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
	},
	{
		ID:          2,
		Title:       "Mens Casual Premium Slim Fit T-Shirts",
		Price:       22.3,
		Description: "Slim-fitting style, contrast raglan long sleeve.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
	},
	{
		ID:          3,
		Title:       "Mens Cotton Jacket",
		Price:       55.99,
		Description: "Great outerwear jackets for Spring/Autumn/Winter.",
		Category:    "men's clothing",
		Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
	},
	{
		ID:          4,
		Title:       "John Hardy Women's Legends Naga Gold & Silver Dragon Bracelet",
		Price:       695,
		Description: "From our Legends Collection, the Naga was inspired by the mythical water dragon.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/71pWzhdJNwL._AC_UL640_QL65_ML3_.jpg",
	},
	{
		ID:          5,
		Title:       "Solid Gold Petite Micropave",
		Price:       168,
		Description: "Satisfaction guaranteed. Designed and sold by Hafeez Center in the United States.",
		Category:    "jewelery",
		Image:       "https://fakestoreapi.com/img/61sbMiUnoGL._AC_UL640_QL65_ML3_.jpg",
	},
	{
		ID:          6,
		Title:       "WD 2TB Elements Portable External Hard Drive - USB 3.0",
		Price:       64,
		Description: "USB 3.0 and USB 2.0 compatibility. Fast data transfers.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
	},
	{
		ID:          7,
		Title:       "Acer SB220Q bi 21.5 inches Full HD IPS Ultra-Thin",
		Price:       599,
		Description: "21.5 inches Full HD widescreen IPS display.",
		Category:    "electronics",
		Image:       "https://fakestoreapi.com/img/81QpkIctqPL._AC_SX679_.jpg",
	},
	{
		ID:          8,
		Title:       "MBJ Women's Solid Short Sleeve Boat Neck V",
		Price:       9.85,
		Description: "95% rayon, 5% spandex. Lightweight fabric with great stretch.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/71z3kpMAYsL._AC_UY879_.jpg",
	},
	{
		ID:          9,
		Title:       "Opna Women's Short Sleeve Moisture",
		Price:       7.95,
		Description: "100% polyester, machine wash. Lightweight and breathable.",
		Category:    "women's clothing",
		Image:       "https://fakestoreapi.com/img/51eg55uWmdL._AC_UX679_.jpg",
	},
}

// seedCategories returns the distinct categories in first-seen order.
func seedCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range seedProducts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
