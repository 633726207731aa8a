package service

import (
	"Collabenote/dao"
	"Collabenote/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(NoteService), "*"),
	wire.Bind(new(INoteService), new(*NoteService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(PurchaseService), "*"),
	wire.Bind(new(IPurchaseService), new(*PurchaseService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),

	wire.Struct(new(AccessRequestService), "*"),
	wire.Bind(new(IAccessRequestService), new(*AccessRequestService)),

	NewOssService,

	wire.Bind(new(NoteStore), new(*dao.NoteDAO)),
	wire.Bind(new(UserStore), new(*dao.UserDAO)),
	wire.Bind(new(AccessRequestStore), new(*dao.AccessRequestDAO)),
	wire.Bind(new(CredentialStore), new(*dao.CredentialDAO)),
	wire.Bind(new(CartStore), new(*cache.CartStorage)),
)
