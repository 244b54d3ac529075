package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/speps/go-hashids/v2"
)

// Capitalize 首字母大写，其余小写
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// FormatAmount 去掉无意义的小数位，5.0 -> "5"
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EncodeHashID 数字 ID 编码成短码
func EncodeHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	e, _ := h.EncodeInt64([]int64{id})
	return e
}

// DecodeHashID 短码解回数字 ID
func DecodeHashID(salt string, code string) (int64, bool) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeInt64WithError(code)
	if err != nil || len(ids) != 1 {
		return 0, false
	}
	return ids[0], true
}
