package pricing

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

func validateGetDisplayPrice(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if _, ok := req.GetFields()["product_id"]; !ok {
		return fmt.Errorf("product_id is required")
	}
	return nil
}

// validateSelectDisplayPrice only requires a request. A missing or non-list
// variants field is read as an empty list and yields no price.
func validateSelectDisplayPrice(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	return nil
}

func validateSyncCatalog(req *structpb.Struct) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.GetFields()["product"].GetStructValue() == nil {
		return fmt.Errorf("product is required")
	}
	if v, ok := req.GetFields()["variants"]; ok && !isNull(v) && v.GetListValue() == nil {
		return fmt.Errorf("variants must be a list")
	}
	return nil
}
