/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrepareDataForBSONStorage takes the given value and converts it to the type expected by the MongoDB driver for
// inserting documents. The value must be a struct with exported fields and proper json tags or a map. To use the
// MongoDB primary key (_id), you must have an _id field in either the struct or map. Alternatively, add it to the
// map returned by this function. If no _id field is set, then MongoDB will generate one for you.
func PrepareDataForBSONStorage(value interface{}) (map[string]interface{}, error) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	return convertMarshalledValueToMap(valueBytes)
}

func convertMarshalledValueToMap(valueBytes []byte) (map[string]interface{}, error) {
	var unmarshalledValue map[string]interface{}

	jsonDecoder := json.NewDecoder(bytes.NewReader(valueBytes))
	jsonDecoder.UseNumber()

	err := jsonDecoder.Decode(&unmarshalledValue)
	if err != nil {
		return nil, err
	}

	escapedMap, err := escapeMapForDocumentDB(unmarshalledValue)
	if err != nil {
		return nil, err
	}

	return escapedMap, nil
}

// escapeMapForDocumentDB recursively travels through the given map and ensures that all keys are safe for DocumentDB.
// All "." characters in keys are replaced with "`" characters.
// If any "`" characters are discovered in keys then an error is returned, since this would cause confusion with the
// scheme described above.
func escapeMapForDocumentDB(unescapedMap map[string]interface{}) (map[string]interface{}, error) {
	escapedMap := make(map[string]interface{})

	for unescapedKey, unescapedValue := range unescapedMap {
		escapedKey, escapedValue, err := escapeKeyValuePair(unescapedKey, unescapedValue)
		if err != nil {
			return nil, err
		}

		escapedMap[escapedKey] = escapedValue
	}

	return escapedMap, nil
}

func escapeKeyValuePair(unescapedKey string, unescapedValue interface{}) (string, interface{},
	error) {
	if strings.Contains(unescapedKey, "`") {
		return "", nil,
			fmt.Errorf(`JSON keys cannot have "`+"`"+`" characters within them. Invalid key: %s`, unescapedKey)
	}

	escapedValue, err := escapeValue(unescapedValue)
	if err != nil {
		return "", nil, err
	}

	return escapeKey(unescapedKey), escapedValue, nil
}

// EscapeKey replaces the "." characters of a document key.
func EscapeKey(unescapedKey string) string {
	return escapeKey(unescapedKey)
}

func escapeKey(unescapedKey string) string {
	return strings.ReplaceAll(unescapedKey, ".", "`")
}

// UnescapeKey reverses EscapeKey.
func UnescapeKey(escapedKey string) string {
	return strings.ReplaceAll(escapedKey, "`", ".")
}

// RestoreJSONValue converts a value decoded by the MongoDB driver back to the form encoding/json
// produces for the same document: objects become map[string]interface{} with unescaped keys,
// arrays become []interface{} and integers become float64.
func RestoreJSONValue(value interface{}) interface{} {
	switch v := value.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(v))

		for _, e := range v {
			m[UnescapeKey(e.Key)] = RestoreJSONValue(e.Value)
		}

		return m
	case primitive.M:
		return RestoreJSONMap(v)
	case map[string]interface{}:
		return RestoreJSONMap(v)
	case primitive.A:
		return restoreArray(v)
	case []interface{}:
		return restoreArray(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

// RestoreJSONMap applies RestoreJSONValue to every entry of the map.
func RestoreJSONMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}

	restored := make(map[string]interface{}, len(m))

	for k, v := range m {
		restored[UnescapeKey(k)] = RestoreJSONValue(v)
	}

	return restored
}

func restoreArray(a []interface{}) []interface{} {
	restored := make([]interface{}, len(a))

	for i, v := range a {
		restored[i] = RestoreJSONValue(v)
	}

	return restored
}

func escapeValue(unescapedValue interface{}) (interface{}, error) {
	unescapedValueAsArray, ok := unescapedValue.([]interface{})
	if ok {
		return escapeArray(unescapedValueAsArray)
	}

	unescapedValueAsMap, ok := unescapedValue.(map[string]interface{})
	if ok {
		escapedValue, err := escapeMapForDocumentDB(unescapedValueAsMap)
		if err != nil {
			return nil, err
		}

		return escapedValue, nil
	}

	// In this case, the value is not a nested object or array and so doesn't need escaping.
	return unescapedValue, nil
}

func escapeArray(unescapedArray []interface{}) (interface{}, error) {
	escapedArray := make([]interface{}, len(unescapedArray))

	for i, unescapedValueInUnescapedArray := range unescapedArray {
		escapedValue, err := escapeValue(unescapedValueInUnescapedArray)
		if err != nil {
			return nil, err
		}

		escapedArray[i] = escapedValue
	}

	return escapedArray, nil
}
