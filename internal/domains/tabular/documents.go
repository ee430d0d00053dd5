package tabular

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"

	"toolbox/go-backend/internal/domains/contracts"
	"toolbox/go-backend/pkg/models"
)

const MessageInvalidJSON = "Invalid JSON"

func convertJSON(content []byte) (models.FileConversion, error) {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return models.FileConversion{}, contracts.InvalidInput(MessageInvalidJSON)
	}
	return models.FileConversion{Kind: KindJSON, Document: doc}, nil
}

func convertYAML(name string, content []byte) (models.FileConversion, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return models.FileConversion{}, contracts.InvalidInputf("invalid YAML: %v", err)
	}
	doc = normalizeYAML(doc)
	download, err := jsonDownload(name, doc)
	if err != nil {
		return models.FileConversion{}, err
	}
	return models.FileConversion{Kind: KindYAML, Document: doc, Download: download}, nil
}

// normalizeYAML rewrites non-string mapping keys so the document encodes as JSON.
func normalizeYAML(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		for k, item := range typed {
			typed[k] = normalizeYAML(item)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, item := range typed {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range typed {
			typed[i] = normalizeYAML(item)
		}
		return typed
	default:
		return v
	}
}

func convertHCL(name string, content []byte) (models.FileConversion, error) {
	file, diags := hclparse.NewParser().ParseHCL(content, name)
	if diags.HasErrors() {
		return models.FileConversion{}, contracts.InvalidInputf("invalid HCL: %s", diags.Error())
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return models.FileConversion{}, fmt.Errorf("unexpected HCL body type %T", file.Body)
	}
	doc, err := hclBodyToNative(body)
	if err != nil {
		return models.FileConversion{}, err
	}
	download, err := jsonDownload(name, doc)
	if err != nil {
		return models.FileConversion{}, err
	}
	return models.FileConversion{Kind: KindHCL, Document: doc, Download: download}, nil
}

// hclBodyToNative evaluates attributes without variables or functions.
// Labelled blocks nest under their labels; unlabelled blocks collect into a list.
func hclBodyToNative(body *hclsyntax.Body) (map[string]any, error) {
	out := make(map[string]any, len(body.Attributes)+len(body.Blocks))
	names := make([]string, 0, len(body.Attributes))
	for attrName := range body.Attributes {
		names = append(names, attrName)
	}
	sort.Strings(names)
	for _, attrName := range names {
		value, diags := body.Attributes[attrName].Expr.Value(nil)
		if diags.HasErrors() {
			return nil, contracts.InvalidInputf("invalid HCL attribute %q: %s", attrName, diags.Error())
		}
		native, err := ctyToNative(value)
		if err != nil {
			return nil, contracts.InvalidInputf("attribute %q: %v", attrName, err)
		}
		out[attrName] = native
	}
	for _, block := range body.Blocks {
		nested, err := hclBodyToNative(block.Body)
		if err != nil {
			return nil, err
		}
		if err := placeBlock(out, block, nested); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func placeBlock(out map[string]any, block *hclsyntax.Block, nested map[string]any) error {
	if len(block.Labels) == 0 {
		list, ok := out[block.Type].([]any)
		if _, exists := out[block.Type]; exists && !ok {
			return contracts.InvalidInputf("block %q conflicts with an attribute or labelled block", block.Type)
		}
		out[block.Type] = append(list, nested)
		return nil
	}
	parent, ok := out[block.Type].(map[string]any)
	if !ok {
		if _, exists := out[block.Type]; exists {
			return contracts.InvalidInputf("block %q conflicts with an attribute or unlabelled block", block.Type)
		}
		parent = map[string]any{}
		out[block.Type] = parent
	}
	for i, label := range block.Labels {
		if i == len(block.Labels)-1 {
			if _, exists := parent[label]; exists {
				return contracts.InvalidInputf("duplicate %s block %q", block.Type, label)
			}
			parent[label] = nested
			break
		}
		child, ok := parent[label].(map[string]any)
		if !ok {
			child = map[string]any{}
			parent[label] = child
		}
		parent = child
	}
	return nil
}

func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("convert number: %w", err)
		}
		return f, nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil
	case ty.IsObjectType() || ty.IsMapType():
		fields := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in %q: %w", key.AsString(), err)
			}
			fields[key.AsString()] = native
		}
		return fields, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}

func jsonDownload(name string, doc any) (*models.Download, error) {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return &models.Download{
		FileName:      swapExt(name, ".json"),
		MimeType:      "application/json",
		ContentBase64: base64.StdEncoding.EncodeToString(raw),
	}, nil
}
