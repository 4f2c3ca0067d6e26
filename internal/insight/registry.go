package insight

// Registry lista todos os módulos de insight conhecidos, na ordem em que o
// job os executa. O conjunto é fechado e conhecido em tempo de compilação;
// não há carga dinâmica de módulos.
func Registry() []Module {
	return []Module{
		NewLowAverageTicketModule(),
		NewLowMarginModule(),
		NewUpsellOpportunityModule(),
	}
}
