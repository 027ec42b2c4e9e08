package main

var apiOperations = []string{"list", "get", "create", "update", "delete"}

var artifactKinds = []string{"schema", "validator", "repository", "service", "route"}

func defaultEndpoint(op string) map[string]interface{} {
	switch op {
	case "list", "get":
		return map[string]interface{}{"enabled": true, "auth": false}
	default:
		return map[string]interface{}{"enabled": true, "auth": true}
	}
}

// ApplyDefaults fills the optional sections of a model document. Every
// section is merged on its own: a partial api.create keeps the defaults of
// api.list and of the remaining keys of api.create. The input is left
// untouched.
func ApplyDefaults(raw map[string]interface{}) map[string]interface{} {
	out := deepCopy(raw).(map[string]interface{})

	switch v := raw["timestamps"].(type) {
	case bool:
		out["timestamps"] = map[string]interface{}{"createdAt": v, "updatedAt": v}
	default:
		out["timestamps"] = mergeSection(map[string]interface{}{"createdAt": true, "updatedAt": true}, v)
	}

	if v, ok := raw["softDelete"]; !ok || v == nil {
		out["softDelete"] = false
	}

	if rawAPI, ok := raw["api"].(map[string]interface{}); ok || raw["api"] == nil {
		api := make(map[string]interface{}, len(apiOperations))
		for k, v := range rawAPI {
			api[k] = deepCopy(v)
		}
		for _, op := range apiOperations {
			api[op] = mergeSection(defaultEndpoint(op), rawAPI[op])
		}
		out["api"] = api
	}

	generate := make(map[string]interface{}, len(artifactKinds))
	for _, kind := range artifactKinds {
		generate[kind] = true
	}
	out["generate"] = mergeSection(generate, raw["generate"])

	return out
}

// mergeSection overlays the keys of override onto defaults. An override
// that is present but not an object is returned as is, for the meta-schema
// to reject.
func mergeSection(defaults map[string]interface{}, override interface{}) interface{} {
	if override == nil {
		return deepCopy(defaults)
	}

	m, ok := override.(map[string]interface{})
	if !ok {
		return deepCopy(override)
	}

	out := make(map[string]interface{}, len(defaults)+len(m))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range m {
		out[k] = deepCopy(v)
	}

	return out
}

func deepCopy(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, e := range v {
			out[k] = deepCopy(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = deepCopy(e)
		}
		return out
	default:
		return v
	}
}
