package config

import "github.com/spf13/viper"

// CORS cross-origin settings applied by the server middleware
type CORS struct {
	AllowOrigins []string
	AllowHeaders []string
	AllowMethods []string
}

func getCORSConfig(v *viper.Viper) *CORS {
	return &CORS{
		AllowOrigins: v.GetStringSlice("cors.allow_origins"),
		AllowHeaders: v.GetStringSlice("cors.allow_headers"),
		AllowMethods: v.GetStringSlice("cors.allow_methods"),
	}
}

// Paging list defaults
type Paging struct {
	PageSize    int
	MaxPageSize int
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		PageSize:    v.GetInt("paging.page_size"),
		MaxPageSize: v.GetInt("paging.max_page_size"),
	}
}
