package gateway

// DeepMerge recursively merges override into base and returns a new Document.
// Merge semantics (deep-structural override):
//   - mapping keys union; keys present in both recurse when both values are mappings
//   - sequences, scalars, and mixed-type conflicts: override replaces base wholesale
//
// Sequences are never concatenated; annotation maps layered across overrides
// must merge key-wise, not accumulate as lists. Neither input is mutated.
func DeepMerge(base, override Document) Document {
	result := make(Document, len(base)+len(override))
	for k, v := range base {
		result[k] = deepCopy(v)
	}

	for key, overrideValue := range override {
		baseValue, exists := result[key]
		if !exists {
			result[key] = deepCopy(overrideValue)
			continue
		}

		baseMap, baseIsMap := baseValue.(Document)
		overrideMap, overrideIsMap := overrideValue.(Document)
		if baseIsMap && overrideIsMap {
			result[key] = DeepMerge(baseMap, overrideMap)
			continue
		}

		// Replace
		result[key] = deepCopy(overrideValue)
	}

	return result
}

// deepCopy creates a deep copy of any manifest node.
func deepCopy(value any) any {
	switch v := value.(type) {
	case Document:
		result := make(Document, len(v))
		for k, val := range v {
			result[k] = deepCopy(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = deepCopy(val)
		}
		return result
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	default:
		// Scalars are immutable, return as-is
		return value
	}
}
