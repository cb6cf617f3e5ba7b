package server

// Сервер объединяет специфичные HTTP сервера, отвечающие за обработку
// конкретных сущностей: авторизация, витрина, подарки.
type Server struct {
	AuthServer
	CatalogServer
	GiftServer
}

func NewServer(
	authServer AuthServer,
	catalogServer CatalogServer,
	giftServer GiftServer,
) Server {
	return Server{
		AuthServer:    authServer,
		CatalogServer: catalogServer,
		GiftServer:    giftServer,
	}
}
