package main

// @title           Bike Garage Manager API
// @version         1.0
// @description     API de gestão para oficinas de bicicleta: clientes, ordens de serviço, estoque, fornecedores e finanças

// @contact.name   Suporte
// @contact.email  suporte@bikegarage.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
