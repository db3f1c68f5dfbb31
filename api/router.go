package api

import (
	"net/http"

	"cosmossdk.io/log"
	"github.com/gin-gonic/gin"

	"github.com/strangelove-ventures/subgraph-networks/types"
)

// Server exposes one resolved config over a read-only HTTP API.
type Server struct {
	cfg    types.SubgraphConfig
	logger log.Logger
}

func NewServer(cfg types.SubgraphConfig, logger log.Logger) *Server {
	return &Server{
		cfg:    cfg.Clone(),
		logger: logger,
	}
}

// Router builds the gin engine. trustedProxies is passed to gin unchanged.
func (s *Server) Router(trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}

	router.GET("/config", s.getConfig)
	router.GET("/networks", getNetworks)
	router.GET("/tokens/:address", s.getTokenOverride)
	router.GET("/tokens/:address/whitelisted", s.getTokenFlags)
	router.GET("/pools/:address/skip", s.getPoolSkip)
	return router, nil
}

func (s *Server) getConfig(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, s.cfg)
}

type networkInfo struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId"`
}

func listNetworks() []networkInfo {
	all := types.AllNetworks()
	out := make([]networkInfo, 0, len(all))
	for _, n := range all {
		out = append(out, networkInfo{Name: n.Name(), ChainID: n.ChainID()})
	}
	return out
}

func getNetworks(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, listNetworks())
}

type tokenOverrideResponse struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint32 `json:"decimals"`
}

func (s *Server) getTokenOverride(c *gin.Context) {
	addr, ok := s.parseAddress(c)
	if !ok {
		return
	}
	override, found := s.cfg.TokenOverride(addr.String())
	if !found {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "token override not found"})
		return
	}
	c.IndentedJSON(http.StatusOK, tokenOverrideResponse{
		Address:  override.Address.String(),
		Symbol:   override.Symbol,
		Name:     override.Name,
		Decimals: override.Decimals,
	})
}

func (s *Server) getTokenFlags(c *gin.Context) {
	addr, ok := s.parseAddress(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"address":     addr.String(),
		"whitelisted": s.cfg.IsWhitelisted(addr.String()),
		"stablecoin":  s.cfg.IsStablecoin(addr.String()),
	})
}

func (s *Server) getPoolSkip(c *gin.Context) {
	addr, ok := s.parseAddress(c)
	if !ok {
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{
		"address": addr.String(),
		"skip":    s.cfg.ShouldSkipPool(addr.String()),
	})
}

func (s *Server) parseAddress(c *gin.Context) (types.Address, bool) {
	addr, err := types.ParseAddress(c.Param("address"))
	if err != nil {
		s.logger.Debug("rejected request with invalid address", "path", c.Request.URL.Path, "err", err)
		c.IndentedJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return "", false
	}
	return addr, true
}
