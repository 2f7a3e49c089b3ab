package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJSON serializa qualquer valor com indentação, usado em logs de depuração
func PrettyJSON(in any) string {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(in, "", "  ")
	if err != nil {
		return ""
	}
	return string(out)
}
