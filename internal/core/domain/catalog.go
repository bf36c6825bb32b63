package domain

// OrderLine is a requested product and quantity, before pricing.
type OrderLine struct {
	ProductID ID
	Quantity  int
}

type StockShortage struct {
	ProductID ID
	Requested int
	Available int
}

// Catalog is a read snapshot of the products referenced by one order request.
type Catalog struct {
	products map[ID]*Product
}

func NewCatalog(products []*Product) *Catalog {
	byID := make(map[ID]*Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: byID}
}

func (c *Catalog) Len() int {
	return len(c.products)
}

func (c *Catalog) Get(id ID) (*Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// Missing returns the ids absent from the catalog, in input order, without duplicates.
func (c *Catalog) Missing(ids []ID) []ID {
	var missing []ID
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := c.products[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Shortages compares the quantity requested per product, summed over
// duplicate lines, with the snapshot stock. Every line must reference a
// product present in the catalog.
func (c *Catalog) Shortages(lines []OrderLine) []StockShortage {
	ids, totals := sumByProduct(lines)

	var shortages []StockShortage
	for _, id := range ids {
		product := c.products[id]
		if totals[id] > product.Stock {
			shortages = append(shortages, StockShortage{
				ProductID: id,
				Requested: totals[id],
				Available: product.Stock,
			})
		}
	}
	return shortages
}

// PriceItems builds order items carrying the current catalog price and name.
func (c *Catalog) PriceItems(lines []OrderLine) []OrderItem {
	items := make([]OrderItem, len(lines))
	for i, line := range lines {
		product := c.products[line.ProductID]
		items[i] = *NewOrderItem(line.ProductID, product.Name, line.Quantity, product.Price)
	}
	return items
}

// StockUpdates computes one update per product: snapshot stock minus the
// total quantity ordered for it.
func (c *Catalog) StockUpdates(items []OrderItem) []StockUpdate {
	lines := make([]OrderLine, len(items))
	for i, item := range items {
		lines[i] = OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	ids, totals := sumByProduct(lines)

	updates := make([]StockUpdate, 0, len(ids))
	for _, id := range ids {
		snapshot := c.products[id].Stock
		updates = append(updates, StockUpdate{
			ProductID:     id,
			Stock:         snapshot - totals[id],
			SnapshotStock: snapshot,
		})
	}
	return updates
}

// UniqueProductIDs returns the product ids of lines in first-seen order.
func UniqueProductIDs(lines []OrderLine) []ID {
	ids, _ := sumByProduct(lines)
	return ids
}

func sumByProduct(lines []OrderLine) ([]ID, map[ID]int) {
	ids := make([]ID, 0, len(lines))
	totals := make(map[ID]int, len(lines))
	for _, line := range lines {
		if _, ok := totals[line.ProductID]; !ok {
			ids = append(ids, line.ProductID)
		}
		totals[line.ProductID] += line.Quantity
	}
	return ids, totals
}
