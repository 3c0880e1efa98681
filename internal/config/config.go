package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"artiflex.db"`

	Session Session  `envPrefix:"SESSION_"`
	Stripe  Stripe   `envPrefix:"STRIPE_"`
	Gemini  Gemini   `envPrefix:"GEMINI_"`
	Rates   Exchange `envPrefix:"EXCHANGERATE_"`
}

type Session struct {
	Secret   string `env:"SECRET,required"`
	TTLHours int    `env:"TTL_HOURS" envDefault:"24"`
}

type Stripe struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.stripe.com"`
	SecretKey  string `env:"SECRET_KEY"`
}

type Gemini struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://generativelanguage.googleapis.com"`
	APIKey     string `env:"API_KEY"`
	Model      string `env:"MODEL" envDefault:"gemini-2.5-flash"`
}

type Exchange struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://v6.exchangerate-api.com"`
	APIKey     string `env:"API_KEY"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	File   string `env:"LOG_FILE" envDefault:"./logs/app.log"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
