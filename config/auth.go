package config

import "github.com/spf13/viper"

// Auth auth config struct
type Auth struct {
	JWT *JWT
}

// getAuth returns the auth config.
func getAuth(v *viper.Viper) *Auth {
	return &Auth{
		JWT: getJWT(v),
	}
}

// JWT jwt config struct
type JWT struct {
	Secret   string
	Issuer   string
	Audience string
	Expire   int // hours
}

// getJWT returns the jwt config.
func getJWT(v *viper.Viper) *JWT {
	return &JWT{
		Secret:   v.GetString("auth.jwt.secret"),
		Issuer:   v.GetString("auth.jwt.issuer"),
		Audience: v.GetString("auth.jwt.audience"),
		Expire:   v.GetInt("auth.jwt.expire"),
	}
}
