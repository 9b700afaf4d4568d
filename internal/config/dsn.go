package config

import (
	"net"
	neturl "net/url"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// DSNValue returns the MySQL DSN, assembling it from the discrete fields when
// no explicit dsn is configured.
func (c DatabaseConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": defaultDBCharset}
	return mc.FormatDSN()
}

// URLValue returns the Redis URL, assembling it from host, port, password and
// db when no explicit url is configured.
func (c RedisConfig) URLValue() string {
	if v := strings.TrimSpace(c.URL); v != "" {
		if !strings.Contains(v, "://") {
			return "redis://" + v
		}
		return v
	}

	u := &neturl.URL{
		Scheme: "redis",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + strconv.Itoa(c.DB),
	}
	if c.Password != "" {
		u.User = neturl.UserPassword("", c.Password)
	}
	return u.String()
}
