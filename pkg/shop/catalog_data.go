package shop

// defaultCategories holds the store's product data. Entry order within a
// category matters: replies list items in this order.
//
// "Chicken Feet (1kg bag)" appears under both Poultry and Exotic Meats on
// purpose; the shop sells it in both ranges and lookups treat the two as
// distinct entries.
func defaultCategories() []rawCategory {
	return []rawCategory{
		{
			name: "POULTRY",
			items: []rawItem{
				{"5 Boiler (Hen)", "£19.99"},
				{"Baby Chicken", "£5.99"},
				{"Boiler (Hen)", "£4.99"},
				{"Chicken Breast", "£9.99"},
				{"Chicken Breakfast Sausages", "£2.99"},
				{"Chicken Drumsticks (Skin Off)", "£6.99"},
				{"Chicken Drumsticks (Skin On)", "£5.99"},
				{"Chicken Feet (1kg bag)", "£4.99"},
				{"Chicken Gizzards (1Kg)", "£5.99"},
				{"Chicken Hearts (1Kg)", "£5.99"},
				{"Chicken Legs (Skin Off)", "£5.99"},
				{"Chicken Legs (Skin On)", "£4.99"},
				{"Chicken Liver (1Kg)", "£5.99"},
				{"Chicken Niblets", "£7.99"},
				{"Chicken Oyster Thighs", "£4.99"},
				{"Chicken Sausages in Blankets (12pc)", "£4.99"},
				{"Chicken Sausages in Blankets Party Pack (50pc)", "£16.99"},
				{"Chicken Strips (1kg)", "£10.99"},
				{"Chicken Thigh Boneless", "£8.99"},
				{"Chicken Thigh Mince", "£8.99"},
				{"Chicken Wings 3 Joint", "£5.99"},
				{"Fire In The Hole Wings (20 pieces)", "£8.99"},
				{"Frozen Halal Whole Turkey", "£34.99"},
				{"Halal Frozen Grade A Chicken (800g)", "£3.99 (Out of stock)"},
				{"Lamb Burgers (4)", "£6.99"},
				{"Mid Wings", "£6.99"},
				{"Moroccan Lamb Sausages", "£3.99"},
				{"Paprika Chicken Cocktail Sausages", "£2.99"},
				{"Peri Peri Chicken Liver (1Kg)", "£6.99"},
				{"Peri Peri Chicken Sausages", "£2.99"},
				{"Premium Chicken Mince", "£8.99"},
				{"Prime Wings", "£6.99"},
				{"Spatch Cock Chicken (1100G)", "£6.99"},
				{"Superchick American Style Fillet Burger", "£11.99"},
				{"Tandoori Chicken 1100-1200 Gms", "£6.99"},
				{"Tariq Halal Traditional Beef Sausages (342g)", "£3.99"},
				{"Veal Burger", "£2.99"},
				{"Beef Burgers (4)", "£5.99"},
				{"Chicken Burgers (4)", "£5.99"},
			},
		},
		{
			name: "LAMB",
			items: []rawItem{
				{"3Kg Baby Lamb Mince Special", "£39.99"},
				{"Baby Lamb Back Chops", "£21.99"},
				{"Baby Lamb Boneless", "£24.99"},
				{"Baby Lamb Front Chops", "£23.99"},
				{"Baby Lamb Leg (Whole)", "£18.99"},
				{"Baby Lamb Mince", "£14.99"},
				{"Baby Lamb Mix Cut", "£16.99"},
				{"Baby Lamb Shoulder (Whole)", "£15.99"},
				{"Lamb Chops", "£13.99"},
				{"Lamb Kidney (6 pieces)", "£3.99"},
				{"Lamb Liver (500g)", "£5.99"},
				{"Lamb Ribs (1Kg)", "£8.99"},
				{"Lamb Shanks (2 pieces)", "£11.99"},
				{"Mutton Mix Cut (1Kg)", "£9.99"},
				{"Whole Baby Lamb (9-10Kg)", "£159.99 (CANNOT BE PREORDERED)"},
			},
		},
		{
			name: "BEEF",
			items: []rawItem{
				{"200g Gold Leaf Sirloin", "£12.99"},
				{"Beef Knuckle Steak (3 Steaks)", "£9.99"},
				{"Beef Marrow Bones 250-300g", "£3.99"},
				{"Beef Mince", "£12.99"},
				{"Beef Ribeye Steak (2 Steaks)", "£11.99"},
				{"Beef Short Ribs (1Kg)", "£10.99"},
				{"Beef Sirloin Steak (2 Steaks)", "£10.99"},
				{"Beef Stew Cut (1Kg)", "£9.99"},
				{"Beef T-Bone Steak", "£12.99"},
				{"Beef Tomahawk Steak", "£19.99"},
				{"Beef Topside Roast (1Kg)", "£11.99"},
				{"Ox Tail (1Kg)", "£9.99"},
				{"Veal Escalope (500g)", "£8.99"},
				{"Wagyu Burger (2 pieces)", "£9.99"},
			},
		},
		{
			name: "GROCERIES",
			items: []rawItem{
				{"Chapatti (10 Pieces)", "£3.49"},
				{"Coffee (200g)", "£3.99"},
				{"Cooking Oil (1L)", "£2.99"},
				{"Basmati Rice (5Kg)", "£11.99"},
				{"Chickpeas (2Kg)", "£4.49"},
				{"Ghee (1Kg)", "£9.99"},
				{"Paratha (5 Pieces)", "£2.99"},
				{"Pitta Bread (6 Pieces)", "£1.49"},
				{"Red Lentils (2Kg)", "£4.99"},
				{"Tandoori Naan (4 Pieces)", "£1.99"},
			},
		},
		{
			name: "EXOTIC MEATS",
			items: []rawItem{
				{"Alligator Meat (500g)", "£14.99"},
				{"Camel Burgers (4 pieces)", "£12.99"},
				{"Camel Meat (1Kg)", "£15.99"},
				{"Chicken Feet (1kg bag)", "£4.99"},
				{"Goat Mix Cut (1Kg)", "£10.99"},
				{"Quail (4 pieces)", "£9.99"},
				{"Rabbit (Whole)", "£11.99"},
				{"Venison Steak (2 Steaks)", "£13.99"},
			},
		},
		{
			name: "FROZEN MEATS",
			items: []rawItem{
				{"Frozen Beef Mince (500g)", "£4.99"},
				{"Frozen Chicken Drumsticks (Skin On)", "£5.99"},
				{"Frozen Chicken Samosas (20 pieces)", "£6.99"},
				{"Frozen Chicken Wings (1Kg)", "£5.49"},
				{"Frozen Lamb Mince (500g)", "£6.99"},
				{"Frozen Lamb Samosas (20 pieces)", "£7.99"},
				{"Frozen Mutton Mix Cut (1Kg)", "£8.99"},
				{"Frozen Whole Chicken (1200g)", "£4.99"},
			},
		},
		{
			name: "MARINATED MEATS",
			groups: []rawGroup{
				{
					name: "Chicken",
					items: []rawItem{
						{"Peri Peri Chicken Wings (1Kg)", "£6.99"},
						{"Tandoori Chicken Legs (1Kg)", "£6.99"},
						{"Chicken Tikka Breast (1Kg)", "£9.99"},
						{"BBQ Chicken Thighs (1Kg)", "£7.99"},
					},
				},
				{
					name: "Lamb",
					items: []rawItem{
						{"Minted Lamb Chops (1Kg)", "£14.99"},
						{"Spicy Lamb Ribs (1Kg)", "£9.99"},
						{"Lamb Seekh Kebabs (6 pieces)", "£5.99"},
					},
				},
				{
					name: "Beef",
					items: []rawItem{
						{"Peppered Beef Steak (2 Steaks)", "£11.99"},
						{"Beef Boti Cubes (1Kg)", "£12.99"},
					},
				},
				{
					name: "Combos",
					items: []rawItem{
						{"Mixed Grill Pack (2Kg)", "£24.99"},
						{"Family BBQ Box (4Kg)", "£44.99"},
					},
				},
			},
		},
		{
			name: "COMBOS",
			items: []rawItem{
				{"Greek Chicken & Lamb Gyros (kebab) 1kg", "£12.99"},
			},
		},
	}
}
