package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/trsv-dev/espresso-idling-bridge/internal/auth"
)

// Выпуск JWT токена для доступа к API.
func main() {
	if errEnv := godotenv.Load(); errEnv != nil {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	var (
		subject = flag.String("sub", "ci", "Subject токена (имя клиента)")
		ttl     = flag.Duration("ttl", auth.TokenExp, "Время жизни токена")
		secret  = flag.String("jwt", "", "Ключ подписи (по умолчанию JWT_SECRET_KEY)")
	)
	flag.Parse()

	key := *secret
	if key == "" {
		key = os.Getenv("JWT_SECRET_KEY")
	}

	token, err := auth.NewJWTTokenBuilder().BuildJWTToken(*subject, key, *ttl)
	if err != nil {
		log.Fatalf("Не удалось выпустить токен: %v", err)
	}

	fmt.Println(token)
}
