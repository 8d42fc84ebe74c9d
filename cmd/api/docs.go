package main

// @title           ERP Assistência Técnica API
// @version         1.0
// @description     API para gestão de assistência técnica: ordens de serviço, clientes, estoque, vendas e financeiro

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
