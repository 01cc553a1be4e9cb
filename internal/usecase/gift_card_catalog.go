package usecase

import "storefront/internal/domain/entities"

// giftCardCatalog is the static list of gift card designs on sale.
var giftCardCatalog = []entities.GiftCardTemplate{
	{
		ID:                "gc-general-1",
		Name:              "Classic Gift Card",
		Description:       "The perfect gift for any occasion. Let them choose what they love!",
		Image:             "/svg/gift-card-classic.svg",
		Category:          entities.GiftCardCategoryGeneral,
		AvailableAmounts:  []float64{25, 50, 100, 150, 200},
		CustomAmountRange: &entities.AmountRange{Min: 10, Max: 500},
		BackgroundColor:   "from-amber-400 to-orange-500",
		AccentColor:       "amber",
	},
	{
		ID:               "gc-birthday-1",
		Name:             "Birthday Celebration",
		Description:      "Make their birthday extra special with a gift they can use however they want.",
		Image:            "/svg/gift-card-birthday.svg",
		Category:         entities.GiftCardCategoryBirthday,
		AvailableAmounts: []float64{25, 50, 100, 200},
		BackgroundColor:  "from-pink-400 to-purple-500",
		AccentColor:      "pink",
	},
	{
		ID:               "gc-holiday-1",
		Name:             "Holiday Cheer",
		Description:      "Spread holiday joy with a gift card perfect for the festive season.",
		Image:            "/svg/gift-card-holiday.svg",
		Category:         entities.GiftCardCategoryHoliday,
		AvailableAmounts: []float64{50, 100, 150, 250},
		BackgroundColor:  "from-red-500 to-green-600",
		AccentColor:      "red",
	},
	{
		ID:               "gc-thankyou-1",
		Name:             "Thank You",
		Description:      "Show your appreciation with a thoughtful gift card.",
		Image:            "/svg/gift-card-thankyou.svg",
		Category:         entities.GiftCardCategoryThankYou,
		AvailableAmounts: []float64{25, 50, 75, 100},
		BackgroundColor:  "from-teal-400 to-cyan-500",
		AccentColor:      "teal",
	},
	{
		ID:               "gc-congrats-1",
		Name:             "Congratulations!",
		Description:      "Celebrate their achievements with a special gift.",
		Image:            "/svg/gift-card-congrats.svg",
		Category:         entities.GiftCardCategoryCongratulations,
		AvailableAmounts: []float64{50, 100, 200, 300},
		BackgroundColor:  "from-yellow-400 to-amber-500",
		AccentColor:      "yellow",
	},
	{
		ID:               "gc-gaming-1",
		Name:             "Gamer's Choice",
		Description:      "For the gaming enthusiast. Level up their experience!",
		Image:            "/svg/gift-card-gaming.svg",
		Category:         entities.GiftCardCategoryGaming,
		AvailableAmounts: []float64{25, 50, 100, 150},
		BackgroundColor:  "from-violet-500 to-purple-600",
		AccentColor:      "violet",
	},
}
