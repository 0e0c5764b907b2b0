package consts

// TenantHeader carries the tenant id on every request.
const TenantHeader = "X-Tenant-ID"

// SensitiveKeys are masked before request headers reach the logs.
var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie"}
