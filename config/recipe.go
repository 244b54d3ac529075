package config

// DefaultMinCookingTime 烹饪时间下限（分钟）
const DefaultMinCookingTime = 5

type Recipe struct {
	MinCookingTime int    `json:"min_cooking_time" yaml:"min_cooking_time"`
	ShareSalt      string `json:"share_salt" yaml:"share_salt"` // 短链接 hashid 盐
}
