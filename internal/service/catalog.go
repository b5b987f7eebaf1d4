package service

import "github.com/vietanh2810/inventory-api/internal/domain"

const (
	seedSaleThreshold = 5
	seedSaleQuantity  = -2
	seedRestock       = 5

	seedSaleNotes    = "Initial Sale"
	seedRestockNotes = "Initial Stock"
)

// retailCatalog is the demonstration data loaded by InitializeRetailData.
func retailCatalog() []domain.Item {
	return []domain.Item{
		{Name: `Samsung 65" QLED TV`, Description: "4K Ultra HD Smart TV with HDR", Quantity: 15, Price: 129999, Location: "Best Buy - Electronics"},
		{Name: "Apple iPad Air", Description: "5th Generation, 256GB, WiFi", Quantity: 30, Price: 74999, Location: "Target - Electronics"},
		{Name: "Nike Running Shoes", Description: "Men's Air Zoom Pegasus 38", Quantity: 45, Price: 12999, Location: "Walmart - Sports"},
		{Name: "KitchenAid Stand Mixer", Description: "Professional 5 Plus Series 5 Quart", Quantity: 20, Price: 39999, Location: "Target - Home"},
		{Name: "LEGO Star Wars Set", Description: "Millennium Falcon Building Kit", Quantity: 25, Price: 16999, Location: "Walmart - Toys"},
		{Name: "Instant Pot Duo", Description: "8 Quart 7-in-1 Pressure Cooker", Quantity: 35, Price: 9999, Location: "Costco - Home"},
		{Name: "Sony PS5", Description: "PlayStation 5 Digital Edition", Quantity: 10, Price: 49999, Location: "Best Buy - Electronics"},
		{Name: "Dyson V11", Description: "Cordless Vacuum Cleaner", Quantity: 15, Price: 59999, Location: "Target - Home"},
	}
}

func seedHistory(item domain.Item) []domain.Adjustment {
	var adjustments []domain.Adjustment
	if item.Quantity > seedSaleThreshold {
		adjustments = append(adjustments, domain.Adjustment{QuantityChange: seedSaleQuantity, Notes: seedSaleNotes})
	}

	return append(adjustments, domain.Adjustment{QuantityChange: seedRestock, Notes: seedRestockNotes})
}
