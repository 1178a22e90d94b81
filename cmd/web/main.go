package main

import "github.com/brianbaso/Social-Blog-App/web"

func main() {
	web.RunApp()
}
