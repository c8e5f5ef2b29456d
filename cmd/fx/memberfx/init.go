package memberfx

import (
	"go.uber.org/fx"

	"whatsup/internal/api/controllers"
	"whatsup/internal/services"
	"whatsup/internal/store"
)

var Module = fx.Provide(
	provideMemberService, provideMemberController)

func provideMemberService(familyStore *store.FamilyStore) services.MemberServiceInterface {
	return services.NewMemberService(familyStore)
}

func provideMemberController(memberService services.MemberServiceInterface) *controllers.MemberController {
	return controllers.NewMemberController(memberService)
}
