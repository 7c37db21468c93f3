package pricing

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/configurable-price-service/internal/app/pricing/domain"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/dto"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/resolve_display_price"
	"github.com/murkotick/configurable-price-service/internal/app/pricing/usecases/sync_catalog"
)

func mapGetDisplayPriceRequest(req *structpb.Struct, defaultStore int64) (resolve_display_price.Request, error) {
	f := req.GetFields()

	productID, err := idString(f, "product_id")
	if err != nil {
		return resolve_display_price.Request{}, err
	}
	storeID, ok, err := int64Field(f, "store_id")
	if err != nil {
		return resolve_display_price.Request{}, err
	}
	if !ok {
		storeID = defaultStore
	}
	return resolve_display_price.Request{ProductID: productID, StoreID: storeID}, nil
}

func mapDisplayPriceReply(out *dto.DisplayPriceDTO) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"product_id":     out.ProductID,
		"store_id":       out.StoreID,
		"display_price":  out.DisplayPrice,
		"baseline_price": out.BaselinePrice,
		"overridden":     out.Overridden,
		"reason":         out.Reason,
		"variant_count":  out.VariantCount,
	})
}

// mapSelectRequest reads {now?, variants:[...]}. A missing now is returned as
// zero; variants that is not a list reads as empty.
func mapSelectRequest(req *structpb.Struct) ([]domain.VariantPriceInfo, time.Time, error) {
	f := req.GetFields()

	now, err := timeField(f, "now")
	if err != nil {
		return nil, time.Time{}, err
	}
	var at time.Time
	if now != nil {
		at = *now
	}

	list := f["variants"].GetListValue().GetValues()
	out := make([]domain.VariantPriceInfo, 0, len(list))
	for i, v := range list {
		vf := v.GetStructValue().GetFields()
		if vf == nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d] must be an object", i)
		}
		base, err := moneyField(vf, "base_price")
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: %w", i, err)
		}
		if base == nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: base_price is required", i)
		}
		special, err := moneyField(vf, "special_price")
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: %w", i, err)
		}
		from, err := timeField(vf, "special_from_date")
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: %w", i, err)
		}
		to, err := timeField(vf, "special_to_date")
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: %w", i, err)
		}

		info, err := domain.NewVariantPriceInfo(base, special, from, to)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("variants[%d]: %w", i, err)
		}
		out = append(out, info)
	}
	return out, at, nil
}

func mapSelectReply(price *domain.Money, ok bool) (*structpb.Struct, error) {
	m := map[string]interface{}{
		"has_price":     ok,
		"display_price": nil,
	}
	if ok {
		m["display_price"] = price.String()
	}
	return structpb.NewStruct(m)
}

func mapSyncCatalogRequest(req *structpb.Struct) (sync_catalog.Request, error) {
	pf := req.GetFields()["product"].GetStructValue().GetFields()
	if pf == nil {
		return sync_catalog.Request{}, fmt.Errorf("product is required")
	}

	id, _, err := int64Field(pf, "id")
	if err != nil {
		return sync_catalog.Request{}, fmt.Errorf("product: %w", err)
	}
	out := sync_catalog.Request{
		Product: sync_catalog.Product{
			ID:     id,
			SKU:    pf["sku"].GetStringValue(),
			Name:   pf["name"].GetStringValue(),
			TypeID: pf["type_id"].GetStringValue(),
		},
	}

	for i, v := range req.GetFields()["variants"].GetListValue().GetValues() {
		vf := v.GetStructValue().GetFields()
		if vf == nil {
			return sync_catalog.Request{}, fmt.Errorf("variants[%d] must be an object", i)
		}
		variant, err := mapSyncVariant(vf)
		if err != nil {
			return sync_catalog.Request{}, fmt.Errorf("variants[%d]: %w", i, err)
		}
		out.Variants = append(out.Variants, variant)
	}
	return out, nil
}

func mapSyncVariant(f map[string]*structpb.Value) (sync_catalog.Variant, error) {
	id, _, err := int64Field(f, "id")
	if err != nil {
		return sync_catalog.Variant{}, err
	}
	storeID, _, err := int64Field(f, "store_id")
	if err != nil {
		return sync_catalog.Variant{}, err
	}
	base, ok, err := decimalString(f, "base_price")
	if err != nil {
		return sync_catalog.Variant{}, err
	}
	if !ok {
		return sync_catalog.Variant{}, fmt.Errorf("base_price is required")
	}
	from, err := timeField(f, "special_from_date")
	if err != nil {
		return sync_catalog.Variant{}, err
	}
	to, err := timeField(f, "special_to_date")
	if err != nil {
		return sync_catalog.Variant{}, err
	}

	v := sync_catalog.Variant{
		ID:          id,
		StoreID:     storeID,
		SKU:         f["sku"].GetStringValue(),
		Saleable:    f["saleable"].GetBoolValue(),
		BasePrice:   base,
		SpecialFrom: from,
		SpecialTo:   to,
	}
	if special, ok, err := decimalString(f, "special_price"); err != nil {
		return sync_catalog.Variant{}, err
	} else if ok {
		v.SpecialPrice = &special
	}
	return v, nil
}

func isNull(v *structpb.Value) bool {
	if v == nil {
		return true
	}
	_, null := v.GetKind().(*structpb.Value_NullValue)
	return null
}

// int64Field accepts an integral number or a numeric string.
func int64Field(f map[string]*structpb.Value, key string) (int64, bool, error) {
	v := f[key]
	if isNull(v) {
		return 0, false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, false, fmt.Errorf("%s must be an integer", key)
		}
		return int64(n), true, nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(k.StringValue, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%s must be an integer", key)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%s must be an integer", key)
	}
}

// idString returns a required id as a string without judging its format;
// format problems are a pricing outcome, not a transport error.
func idString(f map[string]*structpb.Value, key string) (string, error) {
	v := f[key]
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		if k.StringValue == "" {
			return "", fmt.Errorf("%s is required", key)
		}
		return k.StringValue, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%s is required", key)
	}
}

// decimalString accepts a decimal string or a number.
func decimalString(f map[string]*structpb.Value, key string) (string, bool, error) {
	v := f[key]
	if isNull(v) {
		return "", false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		if k.StringValue == "" {
			return "", false, nil
		}
		return k.StringValue, true, nil
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64), true, nil
	default:
		return "", false, fmt.Errorf("%s must be a decimal string", key)
	}
}

func moneyField(f map[string]*structpb.Value, key string) (*domain.Money, error) {
	s, ok, err := decimalString(f, key)
	if err != nil || !ok {
		return nil, err
	}
	m, err := domain.NewMoneyFromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return m, nil
}

// timeField parses an optional RFC3339 timestamp.
func timeField(f map[string]*structpb.Value, key string) (*time.Time, error) {
	v := f[key]
	if isNull(v) {
		return nil, nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok || s.StringValue == "" {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp", key)
	}
	t, err := time.Parse(time.RFC3339, s.StringValue)
	if err != nil {
		return nil, fmt.Errorf("%s must be an RFC3339 timestamp", key)
	}
	t = t.UTC()
	return &t, nil
}
