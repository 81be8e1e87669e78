package boot

import (
	"time"

	"go-appmanager/internal/config"
	"go-appmanager/internal/directory/membership"
	"go-appmanager/internal/discovery/etcd"
	"go-appmanager/internal/logging"
	"go-appmanager/internal/mq/kafka"
	"go-appmanager/internal/pkg/cache"
	"go-appmanager/internal/repository/dao"
	redisrepo "go-appmanager/internal/repository/redis"
	"go-appmanager/internal/security/authz"
	jwtsec "go-appmanager/internal/security/jwt"
	httpSrv "go-appmanager/internal/server/http"
	"go-appmanager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"gorm.io/gorm"
)

// ProvideConfig wraps config.Load for wire with external path param
func ProvideConfig(path string) (*config.Config, error) { return config.Load(path) }

// ProvideLayeredCache 构建通用 LayeredCache（L1 本地, L2 Redis）
func ProvideLayeredCache(r *redisrepo.Client) cache.Cache {
	return cache.NewLayered(cache.NewLocal(), cache.NewRedisAdapter(r))
}

// ProvideDirectory 成员目录客户端，查询结果走分层缓存
func ProvideDirectory(c *config.Config, lc cache.Cache) membership.Directory {
	return membership.NewClient(
		c.Membership.BaseURL,
		time.Duration(c.Membership.TimeoutMS)*time.Millisecond,
		lc,
		time.Duration(c.Membership.CacheSec)*time.Second,
	)
}

func ProvideAuthzEngine(c *config.Config, ml *dao.MemberLinkDAO, ul *dao.MenuItemUserLinkDAO, dir membership.Directory) *authz.Engine {
	rules := authz.Rules{OwnerMemberID: c.Platform.OwnerMemberID, SuperuserID: c.Platform.SuperuserID}
	return authz.NewEngine(rules, ml, ul, dir)
}

// ProvideRouter 装配路由；业务都在 handler / service 层。
func ProvideRouter(c *config.Config, l *logging.Logger, j *jwtsec.Manager, p *kafka.Producer, db *gorm.DB, r *redisrepo.Client, e *etcd.Client,
	apps *service.AppService, memberLinks *service.MemberLinkService, menuItems *service.MenuItemService, userLinks *service.UserLinkService) *gin.Engine {
	return httpSrv.NewRouter(c, l, j, p, db, r, e, apps, memberLinks, menuItems, userLinks)
}

func ProvideApp(c *config.Config, l *logging.Logger, db *gorm.DB, r *redisrepo.Client, k *kafka.Producer, e *etcd.Client, j *jwtsec.Manager, engine *gin.Engine) *App {
	return NewApp(c, l, db, r, k, e, j, engine)
}

var ProviderSet = wire.NewSet(
	ProvideConfig,
	NewLogger,
	NewPostgres,
	NewRedis,
	NewKafkaProducer,
	NewEtcd,
	NewJWTManager,
	ProvideLayeredCache,
	ProvideDirectory,
	ProvideAuthzEngine,
	// DAO
	dao.NewAppDAO,
	dao.NewMemberLinkDAO,
	dao.NewMenuItemDAO,
	dao.NewMenuItemUserLinkDAO,
	// Service：DAO 直接满足各 store 接口
	NewAppServiceDefault,
	NewMemberLinkServiceDefault,
	NewMenuItemServiceDefault,
	NewUserLinkServiceDefault,
	ProvideRouter,
	ProvideApp,
)

// ===== Service providers binding DAOs to store interfaces =====
func NewAppServiceDefault(a *dao.AppDAO, ml *dao.MemberLinkDAO, ul *dao.MenuItemUserLinkDAO, az *authz.Engine, l *logging.Logger) *service.AppService {
	return service.NewAppService(a, ml, ul, az, l)
}
func NewMemberLinkServiceDefault(a *dao.AppDAO, ml *dao.MemberLinkDAO, dir membership.Directory, az *authz.Engine, l *logging.Logger) *service.MemberLinkService {
	return service.NewMemberLinkService(a, ml, dir, az, l)
}
func NewMenuItemServiceDefault(a *dao.AppDAO, mi *dao.MenuItemDAO, ml *dao.MemberLinkDAO, ul *dao.MenuItemUserLinkDAO, az *authz.Engine, l *logging.Logger) *service.MenuItemService {
	return service.NewMenuItemService(a, mi, ml, ul, az, l)
}
func NewUserLinkServiceDefault(mi *dao.MenuItemDAO, ul *dao.MenuItemUserLinkDAO, az *authz.Engine, l *logging.Logger) *service.UserLinkService {
	return service.NewUserLinkService(mi, ul, az, l)
}
