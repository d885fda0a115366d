package level

// Builtin returns the compiled-in default level set, used whenever no
// levels file is supplied. The set walks through the mechanics one at a
// time: plain lava racing, aqua annihilation, box pushing, temporary
// walls, keys, and finally all of them together.
func Builtin() []Definition {
	return []Definition{
		{
			Name: "Lava Flow",
			Grid: []string{
				"###################",
				"###################",
				"###################",
				"#            ######",
				"#P               E#",
				"#            ######",
				"#            #    #",
				"##           #  L #",
				"###L         #    #",
				"###################",
			},
		},
		{
			Name: "Quench",
			Grid: []string{
				"#########",
				"#P     E#",
				"####W####",
				"####L####",
				"#########",
			},
		},
		{
			Name: "Warehouse",
			Grid: []string{
				"########",
				"#P  B  #",
				"#####E##",
				"########",
			},
		},
		{
			Name: "Patience Gate",
			Grid: []string{
				"#######",
				"#P T E#",
				"#######",
			},
			TempWalls: []TempWallDef{
				{Position: [2]int{3, 1}, Duration: 2},
			},
		},
		{
			Name: "Locksmith",
			Grid: []string{
				"########",
				"#P   K #",
				"#  ##  #",
				"#E     #",
				"########",
			},
		},
		{
			Name: "Crucible",
			Grid: []string{
				"###########",
				"#P     K  #",
				"#.#######,#",
				"#L#      ,#",
				"###  E  ###",
				"###########",
			},
		},
	}
}
