package tradezone

import (
	"context"
	"strconv"
	"strings"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/utils"
	"catalog-manager/feature/tradezone/models"

	"go.uber.org/zap"
)

// Fixed values of every product row.
const (
	statusActive       = "active"
	optionName         = "Title"
	optionValue        = "Default Title"
	inventoryTracker   = "shopify"
	inventoryQty       = "0"
	inventoryPolicy    = "deny"
	fulfillmentService = "manual"
	exportTrue         = "TRUE"
)

// Engine reconciles primary records against the indexes. It keeps no state between runs.
type Engine struct {
	indexes       *Indexes
	defaultVendor string
	defaultMarkup float64
	logger        *zap.Logger
}

// NewEngine creates an Engine over prebuilt indexes.
func NewEngine(indexes *Indexes, cfg Config, logger *zap.Logger) *Engine {
	if indexes == nil {
		indexes = BuildIndexes(Sources{})
	}
	return &Engine{
		indexes:       indexes,
		defaultVendor: cfg.DefaultVendor,
		defaultMarkup: cfg.DefaultMarkup,
		logger:        logger,
	}
}

// Run processes the records in order and returns a fresh partition of the export rows.
// Every record yields exactly one product row. Cancellation is checked between records;
// a cancelled run returns ctx.Err() and no partition.
func (e *Engine) Run(ctx context.Context, records []models.PrimaryRecord) (*reconcile.Partitioner[ExportRow], error) {
	p := reconcile.NewPartitioner[ExportRow]()

	for i := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.process(p, &records[i])
	}

	return p, nil
}

func (e *Engine) process(p *reconcile.Partitioner[ExportRow], rec *models.PrimaryRecord) {
	skipped := false
	noMarkup := false

	if rec.Cost <= 0 {
		e.logger.Debug("Skipping product due to zero cost", zap.String("title", rec.Title))
		skipped = true
		p.Inc(reconcile.CounterSkipped)
	}

	attrs, found := e.indexes.Attributes.Lookup(rec.Title, rec.TradezonePartNumber, rec.SupplierPartNumber)
	if !found {
		p.Inc(reconcile.CounterNoAttributeData)
	}

	multiplier, ok := e.indexes.Markups.Resolve(rec.Type)
	if !ok {
		e.logger.Debug("No markup for product type", zap.String("title", rec.Title), zap.String("type", rec.Type))
		noMarkup = true
		multiplier = e.defaultMarkup
		p.Inc(reconcile.CounterNoMarkup)
	}

	images := e.indexes.Images.Images(rec.Title)

	shipping := ExtractShipping(rec.ShippingInformation)
	if utils.ToFloat(shipping.Weight) <= 0 {
		e.logger.Debug("Skipping product due to zero weight", zap.String("title", rec.Title))
		skipped = true
		p.Inc(reconcile.CounterSkipped)
	}

	lane := reconcile.Classify(skipped, noMarkup)
	if lane == reconcile.LaneUpdated {
		p.Inc(reconcile.CounterUpdated)
	}

	handle := Handlize(rec.Title)
	row := e.productRow(rec, handle, shipping, rec.Cost*multiplier, imageFor(1, images, attrs))

	var extra []ExportRow
	for slot := 2; slot <= models.ImageSlots; slot++ {
		if src := imageFor(slot, images, attrs); src != "" {
			extra = append(extra, imageRow(handle, src, slot))
		}
	}

	p.Add(lane, row, extra...)
}

func (e *Engine) productRow(rec *models.PrimaryRecord, handle string, shipping ShippingAttributes, price float64, imageSrc string) ExportRow {
	vendor := rec.Manufacturer
	if vendor == "" {
		vendor = e.defaultVendor
	}

	position := ""
	if imageSrc != "" {
		position = "1"
	}

	return ExportRow{
		Handle:                    handle,
		Title:                     rec.Title,
		BodyHTML:                  bodyHTML(rec),
		Vendor:                    vendor,
		Type:                      rec.Type,
		Tags:                      rec.SearchTerms,
		Status:                    statusActive,
		Option1Name:               optionName,
		Option1Value:              optionValue,
		VariantGrams:              shipping.Weight,
		VariantWeightUnit:         shipping.WeightUnit,
		VariantInventoryTracker:   inventoryTracker,
		VariantInventoryQty:       inventoryQty,
		VariantInventoryPolicy:    inventoryPolicy,
		VariantFulfillmentService: fulfillmentService,
		VariantPrice:              utils.FormatNumber(price),
		CostPerItem:               utils.FormatNumber(rec.Cost),
		VariantRequiresShipping:   exportTrue,
		VariantTaxable:            exportTrue,
		VariantBarcode:            shipping.Barcode,
		ImageSrc:                  imageSrc,
		ImagePosition:             position,
		TradezonePartNumber:       rec.TradezonePartNumber,
		SupplierPartNumber:        rec.SupplierPartNumber,
		SubGroup:                  rec.SubGroup,
		Warranty:                  rec.WarrantyInformation,
		Attributes:                rec.Attributes,
		Shipping:                  rec.ShippingInformation,
		Length:                    shipping.Length,
		Height:                    shipping.Height,
		Width:                     shipping.Width,
		LengthPackaging:           shipping.PackagingLength,
		HeightPackaging:           shipping.PackagingHeight,
		WidthPackaging:            shipping.PackagingWidth,
		Barcode:                   shipping.Barcode,
	}
}

func imageRow(handle, src string, slot int) ExportRow {
	return ExportRow{
		Handle:        handle,
		ImageSrc:      src,
		ImagePosition: strconv.Itoa(slot),
	}
}

// imageFor picks the URL of a 1-based slot: the image table first, then the attribute row.
func imageFor(slot int, images []string, attrs *models.AttributeRecord) string {
	if len(images) >= slot {
		return images[slot-1]
	}
	return attrs.Image(slot)
}

func bodyHTML(rec *models.PrimaryRecord) string {
	return strings.Join([]string{
		"<p>" + NL2BR(rec.ProductDetails) + "</p>",
		"<p>Warranty Information:</p>",
		"<p>" + NL2BR(rec.WarrantyInformation) + "</p>",
		"<p>Attributes:</p>",
		"<p>" + NL2BR(rec.Attributes) + "</p>",
		"<p>Shipping Information:</p>",
		"<p>" + NL2BR(rec.ShippingInformation) + "</p>",
	}, "\n")
}
