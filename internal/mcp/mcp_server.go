// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/safecity/crimelens/internal/contract"
)

// NewMCPServer initializes and configures the Crimelens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Crimelens Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_area_ranking ---
	s.AddTool(mcp.NewTool("get_area_ranking",
		mcp.WithDescription("Rank areas by risk score derived from recorded incident history."),
		mcp.WithNumber("months", mcp.Description("Months of history to aggregate. Defaults to the configured lookback.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetAreaRanking)

	// --- 2. Tool: get_crime_trends ---
	s.AddTool(mcp.NewTool("get_crime_trends",
		mcp.WithDescription("Build the city-level crime trend dashboard for one calendar year."),
		mcp.WithNumber("year", mcp.Description("Dashboard year. Defaults to the current year.")),
	), h.handleGetCrimeTrends)

	// --- 3. Tool: plan_safe_route ---
	s.AddTool(mcp.NewTool("plan_safe_route",
		mcp.WithDescription("Plan a route between two coordinates that avoids recent crime clusters."),
		mcp.WithString("start", mcp.Description("Start point as 'lat,lng' in decimal degrees."), mcp.Required()),
		mcp.WithString("end", mcp.Description("End point as 'lat,lng' in decimal degrees."), mcp.Required()),
		mcp.WithNumber("waypoints", mcp.Description("Number of intermediate waypoints.")),
	), h.handlePlanSafeRoute)

	// --- 4. Tool: get_risk_assessments ---
	s.AddTool(mcp.NewTool("get_risk_assessments",
		mcp.WithDescription("List the persisted per-area risk assessments, highest risk first."),
		mcp.WithString("area", mcp.Description("Filter by exact area label.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetRiskAssessments)

	return s
}

// StartMCPServer starts the Crimelens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
